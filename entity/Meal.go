package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPrepTime is assumed when an ordered item carries no
// preparation time, in minutes.
const DefaultPrepTime = 10

type Meal struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// RestaurantID is nil for general catalog items, which are not
	// editable or deletable through the owner endpoints.
	RestaurantID *primitive.ObjectID `bson:"restaurant_id,omitempty" json:"restaurantId,omitempty"`

	Name         string   `bson:"name" json:"name"`
	Category     string   `bson:"category" json:"category"`
	Area         string   `bson:"area" json:"area"`
	Instructions string   `bson:"instructions" json:"instructions"`
	Image        string   `bson:"image" json:"image"`
	Ingredients  []string `bson:"ingredients" json:"ingredients"`
	Measures     []string `bson:"measures" json:"measures"`
	Price        float64  `bson:"price" json:"price"`
	PrepTime     int      `bson:"prep_time" json:"prepTime"`
}
