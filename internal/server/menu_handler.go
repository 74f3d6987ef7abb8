package server

import (
	"errors"
	"net/http"

	"github.com/ryo-harano/coffee-app/internal/menu"

	"github.com/gin-gonic/gin"
)

type menuHandler struct {
	service menu.Service
}

func newMenuHandler(service menu.Service) *menuHandler {
	return &menuHandler{service: service}
}

func (h *menuHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *menuHandler) Create(c *gin.Context) {
	var input menu.NewItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *menuHandler) Update(c *gin.Context) {
	var input menu.NewItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(menuErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *menuHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(menuErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func menuErrorStatus(err error) int {
	if errors.Is(err, menu.ErrItemNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
