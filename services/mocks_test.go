package services

import (
	"context"

	"fastfood-backend/entity"
	"fastfood-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Func-field mocks for the store interfaces. Unset finders report
// mongo.ErrNoDocuments; unset writers succeed.

type mockUserStore struct {
	insertFunc         func(ctx context.Context, u *entity.User) error
	findByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	existsFunc         func(ctx context.Context, username, email string, exclude *primitive.ObjectID) (bool, error)
	updateFieldsFunc   func(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	setPasswordFunc    func(ctx context.Context, id primitive.ObjectID, hashed string) error
	deleteFunc         func(ctx context.Context, id primitive.ObjectID) error

	inserted []*entity.User
	deleted  []primitive.ObjectID
}

func (m *mockUserStore) Insert(ctx context.Context, u *entity.User) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, u)
	}
	u.ID = primitive.NewObjectID()
	m.inserted = append(m.inserted, u)
	return nil
}

func (m *mockUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserStore) ExistsUsernameOrEmail(ctx context.Context, username, email string, exclude *primitive.ObjectID) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, username, email, exclude)
	}
	return false, nil
}

func (m *mockUserStore) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if m.updateFieldsFunc != nil {
		return m.updateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockUserStore) SetPassword(ctx context.Context, id primitive.ObjectID, hashed string) error {
	if m.setPasswordFunc != nil {
		return m.setPasswordFunc(ctx, id, hashed)
	}
	return nil
}

func (m *mockUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockRestaurantStore struct {
	insertFunc       func(ctx context.Context, r *entity.Restaurant) error
	findByIDFunc     func(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error)
	findByOwnerFunc  func(ctx context.Context, ownerID primitive.ObjectID) (*entity.Restaurant, error)
	findAllFunc      func(ctx context.Context) ([]entity.Restaurant, error)
	searchFunc       func(ctx context.Context, name, address string) ([]entity.Restaurant, error)
	updateFieldsFunc func(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	pushMealFunc     func(ctx context.Context, id, mealID primitive.ObjectID) error
	deleteFunc       func(ctx context.Context, id primitive.ObjectID) error

	deleted []primitive.ObjectID
	pushed  []primitive.ObjectID
}

func (m *mockRestaurantStore) Insert(ctx context.Context, r *entity.Restaurant) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, r)
	}
	r.ID = primitive.NewObjectID()
	return nil
}

func (m *mockRestaurantStore) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockRestaurantStore) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*entity.Restaurant, error) {
	if m.findByOwnerFunc != nil {
		return m.findByOwnerFunc(ctx, ownerID)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockRestaurantStore) FindAll(ctx context.Context) ([]entity.Restaurant, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRestaurantStore) Search(ctx context.Context, name, address string) ([]entity.Restaurant, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, name, address)
	}
	return nil, nil
}

func (m *mockRestaurantStore) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if m.updateFieldsFunc != nil {
		return m.updateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockRestaurantStore) PushMeal(ctx context.Context, id, mealID primitive.ObjectID) error {
	if m.pushMealFunc != nil {
		return m.pushMealFunc(ctx, id, mealID)
	}
	m.pushed = append(m.pushed, mealID)
	return nil
}

func (m *mockRestaurantStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockMealStore struct {
	insertFunc             func(ctx context.Context, meal *entity.Meal) error
	findByIDFunc           func(ctx context.Context, id primitive.ObjectID) (*entity.Meal, error)
	findFunc               func(ctx context.Context, f repository.MealFilter) ([]entity.Meal, error)
	findByIDsFunc          func(ctx context.Context, ids []primitive.ObjectID) ([]entity.Meal, error)
	updateFieldsFunc       func(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	deleteFunc             func(ctx context.Context, id primitive.ObjectID) error
	deleteByRestaurantFunc func(ctx context.Context, restaurantID primitive.ObjectID) error

	deleted []primitive.ObjectID
}

func (m *mockMealStore) Insert(ctx context.Context, meal *entity.Meal) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, meal)
	}
	meal.ID = primitive.NewObjectID()
	return nil
}

func (m *mockMealStore) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Meal, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockMealStore) Find(ctx context.Context, f repository.MealFilter) ([]entity.Meal, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockMealStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Meal, error) {
	if m.findByIDsFunc != nil {
		return m.findByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockMealStore) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if m.updateFieldsFunc != nil {
		return m.updateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockMealStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockMealStore) DeleteByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) error {
	if m.deleteByRestaurantFunc != nil {
		return m.deleteByRestaurantFunc(ctx, restaurantID)
	}
	return nil
}

type mockCartStore struct {
	findByCustomerFunc   func(ctx context.Context, customerID primitive.ObjectID) (*entity.Cart, error)
	upsertFunc           func(ctx context.Context, c *entity.Cart) error
	updateItemsFunc      func(ctx context.Context, customerID primitive.ObjectID, items []entity.CartItem) error
	deleteByCustomerFunc func(ctx context.Context, customerID primitive.ObjectID) error

	upserted     []*entity.Cart
	updatedItems [][]entity.CartItem
	deleted      []primitive.ObjectID
}

func (m *mockCartStore) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) (*entity.Cart, error) {
	if m.findByCustomerFunc != nil {
		return m.findByCustomerFunc(ctx, customerID)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockCartStore) Upsert(ctx context.Context, c *entity.Cart) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, c)
	}
	m.upserted = append(m.upserted, c)
	return nil
}

func (m *mockCartStore) UpdateItems(ctx context.Context, customerID primitive.ObjectID, items []entity.CartItem) error {
	if m.updateItemsFunc != nil {
		return m.updateItemsFunc(ctx, customerID, items)
	}
	m.updatedItems = append(m.updatedItems, items)
	return nil
}

func (m *mockCartStore) DeleteByCustomer(ctx context.Context, customerID primitive.ObjectID) error {
	if m.deleteByCustomerFunc != nil {
		return m.deleteByCustomerFunc(ctx, customerID)
	}
	m.deleted = append(m.deleted, customerID)
	return nil
}

type mockOrderStore struct {
	insertFunc                 func(ctx context.Context, o *entity.Order) error
	findByIDFunc               func(ctx context.Context, id primitive.ObjectID) (*entity.Order, error)
	findByCustomerFunc         func(ctx context.Context, customerID primitive.ObjectID) ([]entity.Order, error)
	findByRestaurantFunc       func(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.Order, error)
	findActiveByRestaurantFunc func(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.Order, error)
	setStatusFunc              func(ctx context.Context, id primitive.ObjectID, status string) error
	deleteActiveByCustomerFunc func(ctx context.Context, customerID primitive.ObjectID) error
	deleteByRestaurantFunc     func(ctx context.Context, restaurantID primitive.ObjectID) error

	inserted    []entity.Order
	setStatuses map[primitive.ObjectID]string
}

func (m *mockOrderStore) Insert(ctx context.Context, o *entity.Order) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, o)
	}
	o.ID = primitive.NewObjectID()
	m.inserted = append(m.inserted, *o)
	return nil
}

func (m *mockOrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockOrderStore) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]entity.Order, error) {
	if m.findByCustomerFunc != nil {
		return m.findByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockOrderStore) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.Order, error) {
	if m.findByRestaurantFunc != nil {
		return m.findByRestaurantFunc(ctx, restaurantID)
	}
	return nil, nil
}

func (m *mockOrderStore) FindActiveByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.Order, error) {
	if m.findActiveByRestaurantFunc != nil {
		return m.findActiveByRestaurantFunc(ctx, restaurantID)
	}
	return nil, nil
}

func (m *mockOrderStore) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if m.setStatusFunc != nil {
		return m.setStatusFunc(ctx, id, status)
	}
	if m.setStatuses == nil {
		m.setStatuses = map[primitive.ObjectID]string{}
	}
	m.setStatuses[id] = status
	return nil
}

func (m *mockOrderStore) DeleteActiveByCustomer(ctx context.Context, customerID primitive.ObjectID) error {
	if m.deleteActiveByCustomerFunc != nil {
		return m.deleteActiveByCustomerFunc(ctx, customerID)
	}
	return nil
}

func (m *mockOrderStore) DeleteByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) error {
	if m.deleteByRestaurantFunc != nil {
		return m.deleteByRestaurantFunc(ctx, restaurantID)
	}
	return nil
}
