package controllers

import (
	"fastfood-backend/pkg/resp"
	"fastfood-backend/services"
	"fastfood-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders — one order per restaurant in the request.
func (o *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	orders, err := o.Svc.Create(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "orders created", "orders": orders})
}

// PUT /orders/:id — owner advances the order.
func (o *OrderController) Advance(c *gin.Context) {
	order, err := o.Svc.AdvanceByOwner(c.Request.Context(), utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order status updated", "order": order})
}

// PUT /orders/:id/consegna — customer confirms receipt.
func (o *OrderController) ConfirmDelivery(c *gin.Context) {
	order, err := o.Svc.ConfirmDelivery(c.Request.Context(), utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders — scoped to the caller.
func (o *OrderController) List(c *gin.Context) {
	orders, err := o.Svc.ListFor(c.Request.Context(), utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (o *OrderController) Detail(c *gin.Context) {
	order, err := o.Svc.Get(c.Request.Context(), utils.CurrentUserID(c), utils.CurrentRole(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}
