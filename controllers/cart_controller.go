package controllers

import (
	"fastfood-backend/pkg/resp"
	"fastfood-backend/services"
	"fastfood-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /carts/me
func (h *CartController) Me(c *gin.Context) {
	cart, err := h.Svc.Get(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cart)
}

// PUT /carts/add
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.Add(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cart)
}

type RemoveFromCartRequest struct {
	MealID string `json:"mealId" binding:"required"`
}

// PUT /carts/remove
func (h *CartController) Remove(c *gin.Context) {
	var req RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, deleted, err := h.Svc.Remove(c.Request.Context(), utils.CurrentUserID(c), req.MealID)
	if err != nil {
		respondError(c, err)
		return
	}
	if deleted {
		resp.OK(c, gin.H{"message": "cart deleted because it is empty"})
		return
	}
	resp.OK(c, cart)
}

// DELETE /carts/me
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), utils.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart deleted"})
}
