package repository

import (
	"context"

	"fastfood-backend/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

func (r *OrderRepository) Insert(ctx context.Context, o *entity.Order) error {
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = id
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	var o entity.Order
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]entity.Order, error) {
	return r.find(ctx, bson.M{"customer_id": customerID})
}

func (r *OrderRepository) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.Order, error) {
	return r.find(ctx, bson.M{"restaurant_id": restaurantID})
}

// FindActiveByRestaurant returns the restaurant's not-yet-delivered
// orders, i.e. the current queue.
func (r *OrderRepository) FindActiveByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.Order, error) {
	return r.find(ctx, bson.M{
		"restaurant_id": restaurantID,
		"status":        bson.M{"$ne": entity.StatusDelivered},
	})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]entity.Order, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var out []entity.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus is the single status write; last write wins when two
// transitions race on the same order.
func (r *OrderRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	return err
}

// DeleteActiveByCustomer removes a customer's non-delivered orders.
// Delivered ones are kept for restaurant statistics.
func (r *OrderRepository) DeleteActiveByCustomer(ctx context.Context, customerID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{
		"customer_id": customerID,
		"status":      bson.M{"$ne": entity.StatusDelivered},
	})
	return err
}

func (r *OrderRepository) DeleteByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"restaurant_id": restaurantID})
	return err
}
