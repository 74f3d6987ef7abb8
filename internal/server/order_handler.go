package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/ryo-harano/coffee-app/internal/order"
	"github.com/ryo-harano/coffee-app/internal/pickup"
	"github.com/ryo-harano/coffee-app/internal/pricing"
	"github.com/ryo-harano/coffee-app/internal/session"

	"github.com/gin-gonic/gin"
)

type orderHandler struct {
	service order.Service
	ctrl    *session.Controller
}

func newOrderHandler(service order.Service, ctrl *session.Controller) *orderHandler {
	return &orderHandler{service: service, ctrl: ctrl}
}

func (h *orderHandler) Checkout(c *gin.Context) {
	var req struct {
		Nickname string `json:"nickname"`
		Email    string `json:"email"`
	}
	// The body is optional; an empty one means an anonymous order.
	_ = c.ShouldBindJSON(&req)

	var customer *order.CustomerInfo
	if req.Nickname != "" || req.Email != "" {
		customer = &order.CustomerInfo{Nickname: req.Nickname, Email: req.Email}
	}

	o, err := h.ctrl.Checkout(c.Request.Context(), sessionID(c), customer)
	switch {
	case errors.Is(err, order.ErrEmptyOrder):
		// Checking out an empty cart changes nothing and is not a
		// user-facing failure.
		c.JSON(http.StatusOK, gin.H{"order": nil})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":           o,
		"estimatedPickup": pickup.Clock(pickup.Estimate(o.Date.Local())),
	})
}

// orderView is an order decorated with the display-side derivations:
// the re-derived receipt for strikethrough rendering and the pickup
// estimate.
type orderView struct {
	order.Order
	Subtotal        int    `json:"subtotal"`
	DiscountApplied bool   `json:"discountApplied"`
	EstimatedPickup string `json:"estimatedPickup"`
}

func (h *orderHandler) List(c *gin.Context) {
	orders, err := h.service.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		receipt := pricing.Quote(o.Items)
		views = append(views, orderView{
			Order:           o,
			Subtotal:        receipt.Subtotal,
			DiscountApplied: receipt.DiscountApplied,
			EstimatedPickup: pickup.Clock(pickup.Estimate(o.Date.In(time.Local))),
		})
	}

	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *orderHandler) MarkAllViewed(c *gin.Context) {
	if err := h.service.MarkAllViewed(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *orderHandler) UnviewedCount(c *gin.Context) {
	count, err := h.service.UnviewedCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
