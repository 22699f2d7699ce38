package controllers

import (
	"net/http"

	"fastfood-backend/pkg/resp"
	"fastfood-backend/services"
	"fastfood-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserController struct{ Svc *services.AuthService }

func NewUserController(s *services.AuthService) *UserController { return &UserController{Svc: s} }

// POST /users/register
func (u *UserController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := u.Svc.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "user registered", "userId": user.ID})
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /users/login
func (u *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := u.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user})
}

// GET /users/me
func (u *UserController) Me(c *gin.Context) {
	user, err := u.Svc.Profile(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, user)
}

// PUT /users/me
func (u *UserController) UpdateMe(c *gin.Context) {
	var req services.UpdateProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := u.Svc.UpdateProfile(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// PUT /users/me/password
func (u *UserController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := u.Svc.ChangePassword(c.Request.Context(), utils.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}

// DELETE /users/:id
func (u *UserController) Delete(c *gin.Context) {
	targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if err := u.Svc.DeleteAccount(c.Request.Context(), utils.CurrentUserID(c), utils.CurrentRole(c), targetID); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user and associated data removed"})
}
