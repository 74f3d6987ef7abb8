// Package server wires the storefront and admin HTTP API.
package server

import (
	"github.com/ryo-harano/coffee-app/internal/auth"
	"github.com/ryo-harano/coffee-app/internal/logger"
	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/middleware"
	"github.com/ryo-harano/coffee-app/internal/order"
	"github.com/ryo-harano/coffee-app/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// Deps carries everything the router needs.
type Deps struct {
	MenuSvc    menu.Service
	OrderSvc   order.Service
	Controller *session.Controller
	Admin      *auth.Admin
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.RateLimit())
	r.Use(sessionMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	menuHandler := newMenuHandler(deps.MenuSvc)
	cartHandler := newCartHandler(deps.Controller)
	orderHandler := newOrderHandler(deps.OrderSvc, deps.Controller)

	api := r.Group("/api")
	{
		api.GET("/menu", menuHandler.List)

		api.GET("/cart", cartHandler.View)
		api.POST("/cart/items", cartHandler.Add)
		api.DELETE("/cart/items", cartHandler.Remove)
		api.DELETE("/cart", cartHandler.Clear)

		api.POST("/checkout", orderHandler.Checkout)
		api.GET("/orders", orderHandler.List)
		api.POST("/orders/viewed", orderHandler.MarkAllViewed)
		api.GET("/orders/unviewed-count", orderHandler.UnviewedCount)

		api.POST("/admin/login", loginHandler(deps.Admin))
		admin := api.Group("/admin", auth.RequireAdmin(deps.Admin))
		{
			admin.POST("/menu", menuHandler.Create)
			admin.PUT("/menu/:id", menuHandler.Update)
			admin.DELETE("/menu/:id", menuHandler.Delete)
		}
	}

	return r
}

// sessionMiddleware ties each request to a cart session, minting an id
// for first-time visitors and echoing it back so the client can keep
// it.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(sessionHeader)
		if sid == "" {
			sid = uuid.New().String()
		}
		c.Set("sessionID", sid)
		c.Header(sessionHeader, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("sessionID")
}

func loginHandler(admin *auth.Admin) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "invalid request"})
			return
		}

		token, err := admin.Login(req.Email, req.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid email or password"})
			return
		}

		c.JSON(200, gin.H{"token": token})
	}
}
