package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastfood-backend/entity"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const createdAtLayout = "02/01/2006 - 15:04"

type OrderService struct {
	orders      OrderStore
	restaurants RestaurantStore
	users       UserStore
	loc         *time.Location
}

func NewOrderService(orders OrderStore, restaurants RestaurantStore, users UserStore) *OrderService {
	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		loc = time.UTC
	}
	return &OrderService{orders: orders, restaurants: restaurants, users: users, loc: loc}
}

type OrderMealIn struct {
	ID           string  `json:"id" binding:"required"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Qty          int     `json:"qty"`
	UnitPrice    float64 `json:"unitPrice"`
	PrepTime     int     `json:"prepTime"`
}

type CreateOrderIn struct {
	Meals          []OrderMealIn `json:"meals" binding:"required,min=1"`
	DeliveryMethod string        `json:"deliveryMethod"`
}

// Create splits one request into one order per restaurant. Each order
// is priced and queued on its own: total is the sum of qty*unitPrice
// over its items, the wait estimate is its own preparation time plus
// the stored wait of every open order already queued at that
// restaurant, and the order jumps straight to in-preparation when the
// queue is empty.
//
// There is no rollback across the resulting documents: a failed insert
// leaves the earlier restaurants' orders committed. Two concurrent
// creations can also both see an empty queue and both claim the head
// slot; the window between the queue read and the insert is accepted
// at this scale.
func (s *OrderService) Create(ctx context.Context, customerID primitive.ObjectID, in *CreateOrderIn) ([]entity.Order, error) {
	user, err := s.users.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "user not found")
		}
		return nil, err
	}

	groups := map[primitive.ObjectID][]entity.OrderMeal{}
	for _, m := range in.Meals {
		if m.RestaurantID == "" {
			return nil, fail(ErrValidation, fmt.Sprintf("missing restaurantId for meal %q", m.Name))
		}
		restID, err := primitive.ObjectIDFromHex(m.RestaurantID)
		if err != nil {
			return nil, fail(ErrValidation, fmt.Sprintf("invalid restaurantId for meal %q", m.Name))
		}
		mealID, err := primitive.ObjectIDFromHex(m.ID)
		if err != nil {
			return nil, fail(ErrValidation, fmt.Sprintf("invalid id for meal %q", m.Name))
		}
		prep := m.PrepTime
		if prep == 0 {
			prep = entity.DefaultPrepTime
		}
		groups[restID] = append(groups[restID], entity.OrderMeal{
			MealID:    mealID,
			Name:      m.Name,
			Qty:       m.Qty,
			UnitPrice: m.UnitPrice,
			PrepTime:  prep,
		})
	}

	createdAt := time.Now().In(s.loc).Format(createdAtLayout)
	created := make([]entity.Order, 0, len(groups))

	for restID, meals := range groups {
		var total float64
		var wait int
		for _, m := range meals {
			total += float64(m.Qty) * m.UnitPrice
			wait += m.Qty * m.PrepTime
		}

		queue, err := s.orders.FindActiveByRestaurant(ctx, restID)
		if err != nil {
			return created, err
		}

		// An empty queue admits the new order as its head.
		status := entity.StatusOrdered
		if len(queue) == 0 {
			status = entity.StatusInPreparation
		}
		for _, q := range queue {
			if q.Status == entity.StatusOrdered || q.Status == entity.StatusInPreparation {
				wait += q.WaitTime
			}
		}

		order := entity.Order{
			CustomerID:     user.ID,
			CustomerName:   user.Username,
			RestaurantID:   restID,
			Meals:          meals,
			Total:          total,
			Status:         status,
			DeliveryMethod: in.DeliveryMethod,
			WaitTime:       wait,
			CreatedAt:      createdAt,
		}
		if err := s.orders.Insert(ctx, &order); err != nil {
			log.Error().Err(err).Str("restaurant", restID.Hex()).
				Int("committed", len(created)).Msg("order insert failed mid-split")
			return created, err
		}
		created = append(created, order)
	}

	return created, nil
}

// ListFor scopes the order list to the caller: customers see their own
// orders, owners see their restaurant's.
func (s *OrderService) ListFor(ctx context.Context, userID primitive.ObjectID, role string) ([]entity.Order, error) {
	var orders []entity.Order

	switch role {
	case entity.RoleCustomer:
		var err error
		orders, err = s.orders.FindByCustomer(ctx, userID)
		if err != nil {
			return nil, err
		}
	case entity.RoleOwner:
		rest, err := s.restaurants.FindByOwner(ctx, userID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, fail(ErrNotFound, "restaurant not found")
			}
			return nil, err
		}
		orders, err = s.orders.FindByRestaurant(ctx, rest.ID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fail(ErrForbidden, "access denied")
	}

	names := map[primitive.ObjectID]string{}
	for i := range orders {
		name, ok := names[orders[i].RestaurantID]
		if !ok {
			if rest, err := s.restaurants.FindByID(ctx, orders[i].RestaurantID); err == nil {
				name = rest.Name
			} else {
				name = "unknown restaurant"
			}
			names[orders[i].RestaurantID] = name
		}
		orders[i].RestaurantName = name
	}
	return orders, nil
}

// Get returns a single order to one of its parties: the customer who
// placed it or the owner of the restaurant it belongs to.
func (s *OrderService) Get(ctx context.Context, userID primitive.ObjectID, role, orderID string) (*entity.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fail(ErrValidation, "invalid order id")
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "order not found")
		}
		return nil, err
	}

	switch role {
	case entity.RoleCustomer:
		if order.CustomerID != userID {
			return nil, fail(ErrForbidden, "access denied to this order")
		}
	case entity.RoleOwner:
		rest, err := s.restaurants.FindByOwner(ctx, userID)
		if err != nil || rest.ID != order.RestaurantID {
			return nil, fail(ErrForbidden, "access denied to this order")
		}
	default:
		return nil, fail(ErrForbidden, "access denied to this order")
	}
	return order, nil
}
