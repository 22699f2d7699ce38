package controllers

import (
	"net/http"
	"strconv"

	"fastfood-backend/pkg/resp"
	"fastfood-backend/repository"
	"fastfood-backend/services"
	"fastfood-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MealController struct{ Svc *services.MealService }

func NewMealController(s *services.MealService) *MealController { return &MealController{Svc: s} }

// GET /meals?category=&area=&name=&priceMin=&priceMax=&restaurantId=
func (m *MealController) List(c *gin.Context) {
	f := repository.MealFilter{
		Category: c.Query("category"),
		Area:     c.Query("area"),
		Name:     c.Query("name"),
	}
	if v := c.Query("priceMin"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid priceMin")
			return
		}
		f.PriceMin = &p
	}
	if v := c.Query("priceMax"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid priceMax")
			return
		}
		f.PriceMax = &p
	}
	if v := c.Query("restaurantId"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			resp.BadRequest(c, "invalid restaurantId")
			return
		}
		f.RestaurantID = &id
	}

	meals, err := m.Svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, meals)
}

// GET /meals/:id
func (m *MealController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}
	meal, err := m.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, meal)
}

// POST /meals
func (m *MealController) Create(c *gin.Context) {
	var req services.CreateMealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	meal, err := m.Svc.Create(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, meal)
}

// PUT /meals/:id
func (m *MealController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}
	var req services.UpdateMealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	meal, err := m.Svc.Update(c.Request.Context(), utils.CurrentUserID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, meal)
}

// DELETE /meals/:id
func (m *MealController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}
	if err := m.Svc.Delete(c.Request.Context(), utils.CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
