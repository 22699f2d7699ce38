package services

import (
	"context"
	"errors"

	"fastfood-backend/entity"
	"fastfood-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MealService struct {
	meals       MealStore
	restaurants RestaurantStore
}

func NewMealService(meals MealStore, restaurants RestaurantStore) *MealService {
	return &MealService{meals: meals, restaurants: restaurants}
}

func (s *MealService) List(ctx context.Context, f repository.MealFilter) ([]entity.Meal, error) {
	return s.meals.Find(ctx, f)
}

func (s *MealService) Get(ctx context.Context, id primitive.ObjectID) (*entity.Meal, error) {
	meal, err := s.meals.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "meal not found")
		}
		return nil, err
	}
	return meal, nil
}

type CreateMealIn struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	Instructions string   `json:"instructions"`
	Image        string   `json:"image"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1"`
	Measures     []string `json:"measures" binding:"required"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	PrepTime     *int     `json:"prepTime" binding:"required,gte=0"`
}

// Create adds a custom meal to the owner's restaurant and links it
// into the menu.
func (s *MealService) Create(ctx context.Context, ownerID primitive.ObjectID, in *CreateMealIn) (*entity.Meal, error) {
	rest, err := s.restaurants.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrForbidden, "create a restaurant before adding meals")
		}
		return nil, err
	}
	if len(in.Measures) != len(in.Ingredients) {
		return nil, fail(ErrValidation, "measures must have the same length as ingredients")
	}

	meal := &entity.Meal{
		RestaurantID: &rest.ID,
		Name:         in.Name,
		Category:     in.Category,
		Area:         in.Area,
		Instructions: in.Instructions,
		Image:        in.Image,
		Ingredients:  in.Ingredients,
		Measures:     in.Measures,
		Price:        *in.Price,
		PrepTime:     *in.PrepTime,
	}
	if err := s.meals.Insert(ctx, meal); err != nil {
		return nil, err
	}
	if err := s.restaurants.PushMeal(ctx, rest.ID, meal.ID); err != nil {
		return nil, err
	}
	return meal, nil
}

type UpdateMealIn struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	Instructions string   `json:"instructions"`
	Image        string   `json:"image"`
	Ingredients  []string `json:"ingredients"`
	Measures     []string `json:"measures"`
	Price        *float64 `json:"price"`
	PrepTime     *int     `json:"prepTime"`
}

func (s *MealService) Update(ctx context.Context, ownerID, mealID primitive.ObjectID, in *UpdateMealIn) (*entity.Meal, error) {
	meal, err := s.ownedMeal(ctx, ownerID, mealID, "general catalog meals cannot be edited")
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Category != "" {
		fields["category"] = in.Category
	}
	if in.Area != "" {
		fields["area"] = in.Area
	}
	if in.Instructions != "" {
		fields["instructions"] = in.Instructions
	}
	if in.Image != "" {
		fields["image"] = in.Image
	}
	if in.Ingredients != nil {
		fields["ingredients"] = in.Ingredients
	}
	if in.Measures != nil {
		fields["measures"] = in.Measures
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fail(ErrValidation, "price must be >= 0")
		}
		fields["price"] = *in.Price
	}
	if in.PrepTime != nil {
		if *in.PrepTime < 0 {
			return nil, fail(ErrValidation, "prepTime must be >= 0")
		}
		fields["prep_time"] = *in.PrepTime
	}
	if len(fields) == 0 {
		return nil, fail(ErrValidation, "no fields to update")
	}

	if err := s.meals.UpdateFields(ctx, meal.ID, fields); err != nil {
		return nil, err
	}
	return s.meals.FindByID(ctx, meal.ID)
}

func (s *MealService) Delete(ctx context.Context, ownerID, mealID primitive.ObjectID) error {
	meal, err := s.ownedMeal(ctx, ownerID, mealID, "general catalog meals cannot be deleted")
	if err != nil {
		return err
	}
	return s.meals.Delete(ctx, meal.ID)
}

// ownedMeal loads a meal and checks it belongs to the caller's
// restaurant. General catalog meals (no restaurant reference) are off
// limits to everyone.
func (s *MealService) ownedMeal(ctx context.Context, ownerID, mealID primitive.ObjectID, generalMsg string) (*entity.Meal, error) {
	rest, err := s.restaurants.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrForbidden, "create a restaurant first")
		}
		return nil, err
	}
	meal, err := s.meals.FindByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fail(ErrNotFound, "meal not found")
		}
		return nil, err
	}
	if meal.RestaurantID == nil {
		return nil, fail(ErrForbidden, generalMsg)
	}
	if *meal.RestaurantID != rest.ID {
		return nil, fail(ErrForbidden, "not the owner of this meal")
	}
	return meal, nil
}
