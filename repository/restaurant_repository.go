package repository

import (
	"context"

	"fastfood-backend/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RestaurantRepository struct {
	col *mongo.Collection
}

func NewRestaurantRepository(db *mongo.Database) *RestaurantRepository {
	return &RestaurantRepository{col: db.Collection("restaurants")}
}

func (r *RestaurantRepository) Insert(ctx context.Context, rest *entity.Restaurant) error {
	res, err := r.col.InsertOne(ctx, rest)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		rest.ID = id
	}
	return nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindByOwner resolves the single restaurant belonging to an owner.
func (r *RestaurantRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.col.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindAll(ctx context.Context) ([]entity.Restaurant, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []entity.Restaurant
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search matches name and/or address as case-insensitive substrings.
func (r *RestaurantRepository) Search(ctx context.Context, name, address string) ([]entity.Restaurant, error) {
	filter := bson.M{}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if address != "" {
		filter["address"] = bson.M{"$regex": address, "$options": "i"}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var out []entity.Restaurant
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RestaurantRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}

// PushMeal appends a meal id to the restaurant's menu.
func (r *RestaurantRepository) PushMeal(ctx context.Context, id, mealID primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$push": bson.M{"menu": mealID}})
	return err
}

func (r *RestaurantRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
