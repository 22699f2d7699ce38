package repository

import (
	"context"

	"fastfood-backend/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection("carts")}
}

func (r *CartRepository) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) (*entity.Cart, error) {
	var c entity.Cart
	if err := r.col.FindOne(ctx, bson.M{"customer_id": customerID}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert writes the whole cart for the customer, creating it when absent.
func (r *CartRepository) Upsert(ctx context.Context, c *entity.Cart) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"customer_id": c.CustomerID},
		bson.M{"$set": bson.M{"customer_id": c.CustomerID, "items": c.Items}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *CartRepository) UpdateItems(ctx context.Context, customerID primitive.ObjectID, items []entity.CartItem) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"customer_id": customerID},
		bson.M{"$set": bson.M{"items": items}},
	)
	return err
}

func (r *CartRepository) DeleteByCustomer(ctx context.Context, customerID primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"customer_id": customerID})
	return err
}
