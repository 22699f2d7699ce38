package services

import (
	"context"
	"errors"

	"fastfood-backend/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartService struct {
	carts CartStore
}

func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) Get(ctx context.Context, customerID primitive.ObjectID) (*entity.Cart, error) {
	cart, err := s.carts.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "cart is empty or missing")
		}
		return nil, err
	}
	return cart, nil
}

type AddToCartIn struct {
	MealID       string  `json:"mealId" binding:"required"`
	RestaurantID string  `json:"restaurantId" binding:"required"`
	Name         string  `json:"name"`
	Qty          int     `json:"qty"`
	UnitPrice    float64 `json:"unitPrice"`
}

// Add puts an item in the customer's cart, creating the cart on first
// use. The same meal from the same restaurant merges into one entry by
// bumping the quantity.
func (s *CartService) Add(ctx context.Context, customerID primitive.ObjectID, in *AddToCartIn) (*entity.Cart, error) {
	mealID, err := primitive.ObjectIDFromHex(in.MealID)
	if err != nil {
		return nil, fail(ErrValidation, "invalid meal id")
	}
	restID, err := primitive.ObjectIDFromHex(in.RestaurantID)
	if err != nil {
		return nil, fail(ErrValidation, "invalid restaurant id")
	}

	cart, err := s.carts.FindByCustomer(ctx, customerID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		cart = &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{}}
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].MealID == mealID && cart.Items[i].RestaurantID == restID {
			cart.Items[i].Qty += in.Qty
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, entity.CartItem{
			MealID:       mealID,
			Name:         in.Name,
			Qty:          in.Qty,
			UnitPrice:    in.UnitPrice,
			RestaurantID: restID,
		})
	}

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops a meal from the cart. When the last entry goes, the
// cart document is deleted outright; the second return value reports
// that.
func (s *CartService) Remove(ctx context.Context, customerID primitive.ObjectID, mealID string) (*entity.Cart, bool, error) {
	id, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return nil, false, fail(ErrValidation, "invalid meal id")
	}

	cart, err := s.carts.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, fail(ErrNotFound, "cart is empty or missing")
		}
		return nil, false, err
	}
	if len(cart.Items) == 0 {
		return nil, false, fail(ErrNotFound, "cart is empty or missing")
	}

	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.MealID != id {
			kept = append(kept, it)
		}
	}
	cart.Items = kept

	if len(cart.Items) == 0 {
		if err := s.carts.DeleteByCustomer(ctx, customerID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	if err := s.carts.UpdateItems(ctx, customerID, cart.Items); err != nil {
		return nil, false, err
	}
	return cart, false, nil
}

func (s *CartService) Clear(ctx context.Context, customerID primitive.ObjectID) error {
	return s.carts.DeleteByCustomer(ctx, customerID)
}
