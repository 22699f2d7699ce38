package repository

import (
	"context"

	"fastfood-backend/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MealFilter is the optional query surface of GET /meals. Zero values
// mean "no constraint".
type MealFilter struct {
	Category     string
	Area         string
	Name         string
	PriceMin     *float64
	PriceMax     *float64
	RestaurantID *primitive.ObjectID
}

type MealRepository struct {
	col *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{col: db.Collection("meals")}
}

func (r *MealRepository) Insert(ctx context.Context, m *entity.Meal) error {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.ID = id
	}
	return nil
}

func (r *MealRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Meal, error) {
	var m entity.Meal
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MealRepository) Find(ctx context.Context, f MealFilter) ([]entity.Meal, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Area != "" {
		filter["area"] = f.Area
	}
	if f.Name != "" {
		filter["name"] = bson.M{"$regex": f.Name, "$options": "i"}
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		price := bson.M{}
		if f.PriceMin != nil {
			price["$gte"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			price["$lte"] = *f.PriceMax
		}
		filter["price"] = price
	}
	if f.RestaurantID != nil {
		filter["restaurant_id"] = *f.RestaurantID
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var out []entity.Meal
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByIDs resolves a menu's meal documents.
func (r *MealRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Meal, error) {
	if len(ids) == 0 {
		return []entity.Meal{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var out []entity.Meal
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MealRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}

func (r *MealRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MealRepository) DeleteByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"restaurant_id": restaurantID})
	return err
}
