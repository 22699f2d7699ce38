package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"fastfood-backend/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RestaurantService struct {
	restaurants RestaurantStore
	meals       MealStore
	orders      OrderStore
}

func NewRestaurantService(restaurants RestaurantStore, meals MealStore, orders OrderStore) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, meals: meals, orders: orders}
}

func (s *RestaurantService) List(ctx context.Context) ([]entity.Restaurant, error) {
	return s.restaurants.FindAll(ctx)
}

func (s *RestaurantService) Search(ctx context.Context, name, address string) ([]entity.Restaurant, error) {
	return s.restaurants.Search(ctx, name, address)
}

// RestaurantDetail is a restaurant together with its resolved menu.
type RestaurantDetail struct {
	entity.Restaurant
	Meals []entity.Meal `json:"meals"`
}

func (s *RestaurantService) Detail(ctx context.Context, id primitive.ObjectID) (*RestaurantDetail, error) {
	rest, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "restaurant not found")
		}
		return nil, err
	}
	meals, err := s.meals.FindByIDs(ctx, rest.Menu)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{Restaurant: *rest, Meals: meals}, nil
}

type CreateRestaurantIn struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Menu        []string `json:"menu"`
}

func (s *RestaurantService) Create(ctx context.Context, ownerID primitive.ObjectID, in *CreateRestaurantIn) (*entity.Restaurant, error) {
	_, err := s.restaurants.FindByOwner(ctx, ownerID)
	if err == nil {
		return nil, fail(ErrValidation, "owner already has a restaurant")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	rest := &entity.Restaurant{
		OwnerID:     ownerID,
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		Image:       in.Image,
		Menu:        parseMenuIDs(in.Menu),
	}
	if err := s.restaurants.Insert(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

type UpdateRestaurantIn struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Menu        []string `json:"menu"`
}

func (s *RestaurantService) Update(ctx context.Context, ownerID, restID primitive.ObjectID, in *UpdateRestaurantIn) (*entity.Restaurant, error) {
	rest, err := s.restaurants.FindByID(ctx, restID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "restaurant not found")
		}
		return nil, err
	}
	if rest.OwnerID != ownerID {
		return nil, fail(ErrForbidden, "not the owner of this restaurant")
	}

	fields := bson.M{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Address != "" {
		fields["address"] = in.Address
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.Image != "" {
		fields["image"] = in.Image
	}
	if len(in.Menu) > 0 {
		fields["menu"] = parseMenuIDs(in.Menu)
	}
	if len(fields) == 0 {
		return nil, fail(ErrValidation, "no fields to update")
	}

	if err := s.restaurants.UpdateFields(ctx, restID, fields); err != nil {
		return nil, err
	}
	return s.restaurants.FindByID(ctx, restID)
}

// Delete removes the restaurant along with its meals and its whole
// order history.
func (s *RestaurantService) Delete(ctx context.Context, ownerID, restID primitive.ObjectID) error {
	rest, err := s.restaurants.FindByID(ctx, restID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fail(ErrNotFound, "restaurant not found")
		}
		return err
	}
	if rest.OwnerID != ownerID {
		return fail(ErrForbidden, "not the owner of this restaurant")
	}

	if err := s.meals.DeleteByRestaurant(ctx, restID); err != nil {
		return err
	}
	if err := s.orders.DeleteByRestaurant(ctx, restID); err != nil {
		return err
	}
	return s.restaurants.Delete(ctx, restID)
}

type MealCount struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type RestaurantStatistics struct {
	TotalOrders   int            `json:"totalOrders"`
	TotalRevenue  float64        `json:"totalRevenue"`
	OrdersByState map[string]int `json:"ordersByState"`
	TopMeals      []MealCount    `json:"topMeals"`
	OrdersTrend   map[string]int `json:"ordersTrend"`
}

// Statistics recomputes the restaurant's aggregates from its full
// order history on every call. Revenue counts every order regardless
// of status. Top meals are the five highest cumulative quantities,
// ties kept in first-encounter order.
func (s *RestaurantService) Statistics(ctx context.Context, ownerID primitive.ObjectID) (*RestaurantStatistics, error) {
	rest, err := s.restaurants.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "restaurant not found")
		}
		return nil, err
	}

	orders, err := s.orders.FindByRestaurant(ctx, rest.ID)
	if err != nil {
		return nil, err
	}

	stats := &RestaurantStatistics{
		TotalOrders:   len(orders),
		OrdersByState: map[string]int{},
		OrdersTrend:   map[string]int{},
	}
	counts := map[string]int{}
	var encounter []string

	for _, o := range orders {
		stats.TotalRevenue += o.Total
		stats.OrdersByState[o.Status]++
		for _, m := range o.Meals {
			if _, seen := counts[m.Name]; !seen {
				encounter = append(encounter, m.Name)
			}
			counts[m.Name] += m.Qty
		}
		date := strings.SplitN(o.CreatedAt, " - ", 2)[0]
		stats.OrdersTrend[date]++
	}

	top := make([]MealCount, 0, len(encounter))
	for _, name := range encounter {
		top = append(top, MealCount{Name: name, Qty: counts[name]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Qty > top[j].Qty })
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopMeals = top

	return stats, nil
}

// parseMenuIDs keeps the valid hex ids and silently drops the rest,
// the same tolerance the menu resolution applies when reading.
func parseMenuIDs(raw []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		if id, err := primitive.ObjectIDFromHex(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}
