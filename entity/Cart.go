package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	MealID       primitive.ObjectID `bson:"meal_id" json:"mealId"`
	Name         string             `bson:"name" json:"name"`
	Qty          int                `bson:"qty" json:"qty"`
	UnitPrice    float64            `bson:"unit_price" json:"unitPrice"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurantId"`
}

// Cart is keyed by customer: one document per user. Removing the last
// item deletes the document instead of keeping an empty one around.
type Cart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID primitive.ObjectID `bson:"customer_id" json:"customerId"`
	Items      []CartItem         `bson:"items" json:"items"`
}
