package services

import (
	"context"

	"fastfood-backend/entity"
	"fastfood-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces the services depend on. The mongo-backed
// repositories satisfy them; tests plug in fakes. A missing document
// surfaces as mongo.ErrNoDocuments from FindX methods.

type UserStore interface {
	Insert(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsUsernameOrEmail(ctx context.Context, username, email string, exclude *primitive.ObjectID) (bool, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	SetPassword(ctx context.Context, id primitive.ObjectID, hashed string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type RestaurantStore interface {
	Insert(ctx context.Context, r *entity.Restaurant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*entity.Restaurant, error)
	FindAll(ctx context.Context) ([]entity.Restaurant, error)
	Search(ctx context.Context, name, address string) ([]entity.Restaurant, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	PushMeal(ctx context.Context, id, mealID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MealStore interface {
	Insert(ctx context.Context, m *entity.Meal) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Meal, error)
	Find(ctx context.Context, f repository.MealFilter) ([]entity.Meal, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Meal, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) error
}

type CartStore interface {
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) (*entity.Cart, error)
	Upsert(ctx context.Context, c *entity.Cart) error
	UpdateItems(ctx context.Context, customerID primitive.ObjectID, items []entity.CartItem) error
	DeleteByCustomer(ctx context.Context, customerID primitive.ObjectID) error
}

type OrderStore interface {
	Insert(ctx context.Context, o *entity.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error)
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]entity.Order, error)
	FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.Order, error)
	FindActiveByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.Order, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	DeleteActiveByCustomer(ctx context.Context, customerID primitive.ObjectID) error
	DeleteByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) error
}
