package services

import (
	"context"
	"errors"

	"fastfood-backend/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdvanceByOwner moves an order one step along its lifecycle on behalf
// of the restaurant owner. Pickup orders skip the in-delivery leg and
// go from in-preparation straight to delivered; home-delivery orders
// stop at in-delivery, where only the customer's confirmation can
// finish them. The status write is unconditional: concurrent advances
// on the same order are last write wins.
func (s *OrderService) AdvanceByOwner(ctx context.Context, ownerID primitive.ObjectID, orderID string) (*entity.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fail(ErrValidation, "invalid order id")
	}

	rest, err := s.restaurants.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "restaurant not found")
		}
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "order not found")
		}
		return nil, err
	}
	if order.RestaurantID != rest.ID {
		return nil, fail(ErrForbidden, "order belongs to another restaurant")
	}

	idx := entity.StateIndex(order.Status)
	if idx < 0 {
		return nil, fail(ErrValidation, "unknown order status")
	}

	var next string
	if order.DeliveryMethod == entity.DeliveryPickup {
		if idx == len(entity.OrderStates)-1 {
			return nil, fail(ErrValidation, "order already delivered")
		}
		if order.Status == entity.StatusInPreparation {
			// no delivery leg for pickup
			next = entity.StatusDelivered
		} else {
			next = entity.OrderStates[idx+1]
		}
	} else {
		if idx >= entity.StateIndex(entity.StatusInDelivery) {
			return nil, fail(ErrValidation, "only the customer can confirm receipt")
		}
		next = entity.OrderStates[idx+1]
	}

	if err := s.orders.SetStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}

// ConfirmDelivery is the customer's closing move for home-delivery
// orders: it succeeds only while the order sits exactly in
// in-delivery.
func (s *OrderService) ConfirmDelivery(ctx context.Context, customerID primitive.ObjectID, orderID string) (*entity.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fail(ErrValidation, "invalid order id")
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "order not found")
		}
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, fail(ErrForbidden, "cannot modify another customer's order")
	}
	if order.Status != entity.StatusInDelivery {
		return nil, fail(ErrValidation, "order can be confirmed only while in delivery")
	}

	if err := s.orders.SetStatus(ctx, order.ID, entity.StatusDelivered); err != nil {
		return nil, err
	}
	order.Status = entity.StatusDelivered
	return order, nil
}
