package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order states, in lifecycle order. Delivered is terminal.
const (
	StatusOrdered       = "ordered"
	StatusInPreparation = "in-preparation"
	StatusInDelivery    = "in-delivery"
	StatusDelivered     = "delivered"
)

// OrderStates indexes the lifecycle; transitions move forward only.
var OrderStates = []string{StatusOrdered, StatusInPreparation, StatusInDelivery, StatusDelivered}

// Delivery methods. Only pickup is treated specially: it skips the
// in-delivery leg. Any other value behaves as home delivery.
const (
	DeliveryPickup = "pickup"
	DeliveryHome   = "home delivery"
)

// StateIndex returns the position of a status in the lifecycle, or -1.
func StateIndex(status string) int {
	for i, s := range OrderStates {
		if s == status {
			return i
		}
	}
	return -1
}

type OrderMeal struct {
	MealID    primitive.ObjectID `bson:"meal_id" json:"mealId"`
	Name      string             `bson:"name" json:"name"`
	Qty       int                `bson:"qty" json:"qty"`
	UnitPrice float64            `bson:"unit_price" json:"unitPrice"`
	PrepTime  int                `bson:"prep_time" json:"prepTime"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID   primitive.ObjectID `bson:"customer_id" json:"customerId"`
	CustomerName string             `bson:"customer_name" json:"customerName"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurantId"`

	Meals          []OrderMeal `bson:"meals" json:"meals"`
	Total          float64     `bson:"total" json:"total"`
	Status         string      `bson:"status" json:"status"`
	DeliveryMethod string      `bson:"delivery_method" json:"deliveryMethod"`

	// WaitTime is the estimate in minutes frozen at creation; it is
	// never recomputed as the queue drains.
	WaitTime int `bson:"wait_time" json:"waitTime"`

	// CreatedAt is a localized "02/01/2006 - 15:04" string, not an
	// epoch. Statistics take the date portion before " - ".
	CreatedAt string `bson:"created_at" json:"createdAt"`

	// RestaurantName is filled in on listings, not persisted.
	RestaurantName string `bson:"-" json:"restaurantName,omitempty"`
}
