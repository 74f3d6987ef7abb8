package server

import (
	"errors"
	"net/http"

	"github.com/ryo-harano/coffee-app/internal/cart"
	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/session"

	"github.com/gin-gonic/gin"
)

type cartHandler struct {
	ctrl *session.Controller
}

func newCartHandler(ctrl *session.Controller) *cartHandler {
	return &cartHandler{ctrl: ctrl}
}

// View returns the priced cart, including the combo discount preview
// the drawer renders.
func (h *cartHandler) View(c *gin.Context) {
	c.JSON(http.StatusOK, h.ctrl.QuoteCart(sessionID(c)))
}

func (h *cartHandler) Add(c *gin.Context) {
	var req struct {
		ItemID      string           `json:"itemId"`
		Size        menu.Size        `json:"size"`
		Quantity    int              `json:"quantity"`
		Temperature menu.Temperature `json:"temperature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.ctrl.AddToCart(c.Request.Context(), sessionID(c), req.ItemID, req.Size, req.Quantity, req.Temperature)
	switch {
	case errors.Is(err, menu.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.ctrl.QuoteCart(sessionID(c)))
}

func (h *cartHandler) Remove(c *gin.Context) {
	key := cart.Key{
		ItemID:      c.Query("itemId"),
		Size:        menu.Size(c.Query("size")),
		Temperature: menu.Temperature(c.Query("temperature")),
	}

	h.ctrl.RemoveFromCart(sessionID(c), key)
	c.JSON(http.StatusOK, h.ctrl.QuoteCart(sessionID(c)))
}

func (h *cartHandler) Clear(c *gin.Context) {
	h.ctrl.ClearCart(sessionID(c))
	c.Status(http.StatusNoContent)
}
