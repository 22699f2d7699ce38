package controllers

import (
	"fastfood-backend/pkg/resp"
	"fastfood-backend/services"
	"fastfood-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (r *RestaurantController) List(c *gin.Context) {
	restaurants, err := r.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /restaurants/search?q=&address=
func (r *RestaurantController) Search(c *gin.Context) {
	restaurants, err := r.Svc.Search(c.Request.Context(), c.Query("q"), c.Query("address"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"total": len(restaurants), "restaurants": restaurants})
}

// GET /restaurants/statistics
func (r *RestaurantController) Statistics(c *gin.Context) {
	stats, err := r.Svc.Statistics(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /restaurants/:id
func (r *RestaurantController) Detail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	detail, err := r.Svc.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /restaurants
func (r *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := r.Svc.Create(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /restaurants/:id
func (r *RestaurantController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var req services.UpdateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := r.Svc.Update(c.Request.Context(), utils.CurrentUserID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /restaurants/:id
func (r *RestaurantController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if err := r.Svc.Delete(c.Request.Context(), utils.CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant, meals and orders removed"})
}
