// Package auth guards the admin surface. There is a single admin
// account, configured through the environment; customers never
// authenticate.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSecretMissing      = errors.New("JWT secret is not configured")
)

type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Admin validates credentials and issues tokens for the single
// configured admin account.
type Admin struct {
	email        string
	passwordHash string
	secret       []byte
}

// NewAdmin hashes the configured plain password at startup so only
// the hash stays in memory.
func NewAdmin(email, password, secret string) (*Admin, error) {
	if secret == "" {
		return nil, ErrSecretMissing
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &Admin{email: email, passwordHash: hash, secret: []byte(secret)}, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login checks the credentials and returns a signed session token.
func (a *Admin) Login(email, password string) (string, error) {
	if email != a.email || !CheckPasswordHash(password, a.passwordHash) {
		return "", ErrInvalidCredentials
	}
	return a.GenerateToken()
}

func (a *Admin) GenerateToken() (string, error) {
	claims := AdminClaims{
		Email: a.email,
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *Admin) ParseToken(tokenStr string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&AdminClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return a.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Role != "admin" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractAccessToken pulls the bearer token from a request, preferring
// the access_token cookie over the Authorization header.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
