package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fastfood-backend/entity"
	"fastfood-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthService covers registration, login and the /users/me surface,
// plus account deletion with its cascade.
type AuthService struct {
	users       UserStore
	carts       CartStore
	orders      OrderStore
	restaurants RestaurantStore

	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users UserStore, carts CartStore, orders OrderStore, restaurants RestaurantStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		carts:       carts,
		orders:      orders,
		restaurants: restaurants,
		jwtSecret:   secret,
		jwtTTL:      ttl,
	}
}

type RegisterIn struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Role          string `json:"role" binding:"required,oneof=customer owner"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	TaxID         string `json:"taxId"`
}

func (s *AuthService) Register(ctx context.Context, in *RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user := &entity.User{
		Username: username,
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Role:     in.Role,
	}
	switch in.Role {
	case entity.RoleCustomer:
		if in.Address == "" || in.PaymentMethod == "" {
			return nil, fail(ErrValidation, "address and payment method are required for customers")
		}
		user.Customer = &entity.CustomerProfile{Address: in.Address, PaymentMethod: in.PaymentMethod}
	case entity.RoleOwner:
		if in.TaxID == "" {
			return nil, fail(ErrValidation, "tax id is required for restaurant owners")
		}
		user.Owner = &entity.OwnerProfile{TaxID: in.TaxID}
	}

	exists, err := s.users.ExistsUsernameOrEmail(ctx, username, email, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fail(ErrConflict, "username or email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, fail(ErrUnauthorized, "invalid credentials")
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fail(ErrUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}

type UpdateProfileIn struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	TaxID         string `json:"taxId"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, in *UpdateProfileIn) (*entity.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username != "" || email != "" {
		exists, err := s.users.ExistsUsernameOrEmail(ctx, username, email, &userID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fail(ErrConflict, "username or email already in use")
		}
	}

	fields := bson.M{}
	if username != "" {
		fields["username"] = username
	}
	if email != "" {
		fields["email"] = email
	}
	if in.Phone != "" {
		fields["phone"] = in.Phone
	}
	switch user.Role {
	case entity.RoleCustomer:
		if in.Address != "" {
			fields["customer.address"] = in.Address
		}
		if in.PaymentMethod != "" {
			fields["customer.payment_method"] = in.PaymentMethod
		}
	case entity.RoleOwner:
		if in.TaxID != "" {
			fields["owner.tax_id"] = in.TaxID
		}
	}
	if len(fields) == 0 {
		return nil, fail(ErrValidation, "no fields to update")
	}

	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.Profile(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return fail(ErrValidation, "old and new password are required")
	}
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return fail(ErrValidation, "old password does not match")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.SetPassword(ctx, userID, string(hashed))
}

// DeleteAccount removes the caller's own account and its dependents.
// Customers lose their cart and any order not yet delivered; delivered
// orders stay behind for restaurant statistics. Owners take their
// restaurant and the whole of its order history with them.
func (s *AuthService) DeleteAccount(ctx context.Context, callerID primitive.ObjectID, callerRole string, targetID primitive.ObjectID) error {
	if callerID != targetID {
		return fail(ErrForbidden, "cannot delete another user")
	}

	switch callerRole {
	case entity.RoleCustomer:
		if err := s.carts.DeleteByCustomer(ctx, targetID); err != nil {
			return err
		}
		if err := s.orders.DeleteActiveByCustomer(ctx, targetID); err != nil {
			return err
		}
	case entity.RoleOwner:
		rest, err := s.restaurants.FindByOwner(ctx, targetID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		if rest != nil {
			if err := s.orders.DeleteByRestaurant(ctx, rest.ID); err != nil {
				return err
			}
			if err := s.restaurants.Delete(ctx, rest.ID); err != nil {
				return err
			}
		}
	}

	return s.users.Delete(ctx, targetID)
}
