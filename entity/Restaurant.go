package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Restaurant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     primitive.ObjectID `bson:"owner_id" json:"ownerId"`
	Name        string             `bson:"name" json:"name"`
	Address     string             `bson:"address" json:"address"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`

	// Menu holds the ids of this restaurant's meals.
	Menu []primitive.ObjectID `bson:"menu" json:"menu"`
}
