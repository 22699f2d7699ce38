package services

import (
	"context"
	"testing"

	"fastfood-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type transitionFixture struct {
	svc        *OrderService
	orders     *mockOrderStore
	ownerID    primitive.ObjectID
	customerID primitive.ObjectID
	orderID    primitive.ObjectID
}

func newTransitionFixture(t *testing.T, status, deliveryMethod string) *transitionFixture {
	t.Helper()

	f := &transitionFixture{
		ownerID:    primitive.NewObjectID(),
		customerID: primitive.NewObjectID(),
		orderID:    primitive.NewObjectID(),
	}
	restID := primitive.NewObjectID()

	f.orders = &mockOrderStore{
		findByIDFunc: func(_ context.Context, id primitive.ObjectID) (*entity.Order, error) {
			if id != f.orderID {
				return nil, mongo.ErrNoDocuments
			}
			return &entity.Order{
				ID:             f.orderID,
				CustomerID:     f.customerID,
				RestaurantID:   restID,
				Status:         status,
				DeliveryMethod: deliveryMethod,
			}, nil
		},
	}
	rests := &mockRestaurantStore{
		findByOwnerFunc: func(_ context.Context, got primitive.ObjectID) (*entity.Restaurant, error) {
			if got != f.ownerID {
				return nil, mongo.ErrNoDocuments
			}
			return &entity.Restaurant{ID: restID, OwnerID: f.ownerID}, nil
		},
	}
	f.svc = newTestOrderService(f.orders, rests, &mockUserStore{})
	return f
}

func TestAdvanceByOwnerHomeDelivery(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		want    string
		wantErr error
	}{
		{"ordered moves to in-preparation", entity.StatusOrdered, entity.StatusInPreparation, nil},
		{"in-preparation moves to in-delivery", entity.StatusInPreparation, entity.StatusInDelivery, nil},
		{"in-delivery is the owner's last stop", entity.StatusInDelivery, "", ErrValidation},
		{"delivered cannot advance", entity.StatusDelivered, "", ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransitionFixture(t, tt.from, entity.DeliveryHome)
			order, err := f.svc.AdvanceByOwner(context.Background(), f.ownerID, f.orderID.Hex())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, order.Status)
			assert.Equal(t, tt.want, f.orders.setStatuses[f.orderID])
		})
	}
}

func TestAdvanceByOwnerPickupSkipsDelivery(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		want    string
		wantErr error
	}{
		{"ordered moves to in-preparation", entity.StatusOrdered, entity.StatusInPreparation, nil},
		{"in-preparation jumps to delivered", entity.StatusInPreparation, entity.StatusDelivered, nil},
		{"delivered cannot advance", entity.StatusDelivered, "", ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransitionFixture(t, tt.from, entity.DeliveryPickup)
			order, err := f.svc.AdvanceByOwner(context.Background(), f.ownerID, f.orderID.Hex())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, order.Status)
		})
	}
}

func TestAdvanceByOwnerAuthorization(t *testing.T) {
	f := newTransitionFixture(t, entity.StatusOrdered, entity.DeliveryHome)

	_, err := f.svc.AdvanceByOwner(context.Background(), f.ownerID, "nope")
	assert.ErrorIs(t, err, ErrValidation)

	// caller without a restaurant
	_, err = f.svc.AdvanceByOwner(context.Background(), primitive.NewObjectID(), f.orderID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.AdvanceByOwner(context.Background(), f.ownerID, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdvanceByOwnerOtherRestaurant(t *testing.T) {
	f := newTransitionFixture(t, entity.StatusOrdered, entity.DeliveryHome)

	otherOwner := primitive.NewObjectID()
	rests := &mockRestaurantStore{
		findByOwnerFunc: func(context.Context, primitive.ObjectID) (*entity.Restaurant, error) {
			return &entity.Restaurant{ID: primitive.NewObjectID(), OwnerID: otherOwner}, nil
		},
	}
	svc := newTestOrderService(f.orders, rests, &mockUserStore{})

	_, err := svc.AdvanceByOwner(context.Background(), otherOwner, f.orderID.Hex())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestConfirmDelivery(t *testing.T) {
	t.Run("succeeds from in-delivery", func(t *testing.T) {
		f := newTransitionFixture(t, entity.StatusInDelivery, entity.DeliveryHome)
		order, err := f.svc.ConfirmDelivery(context.Background(), f.customerID, f.orderID.Hex())
		require.NoError(t, err)
		assert.Equal(t, entity.StatusDelivered, order.Status)
		assert.Equal(t, entity.StatusDelivered, f.orders.setStatuses[f.orderID])
	})

	t.Run("rejects any other state", func(t *testing.T) {
		for _, status := range []string{entity.StatusOrdered, entity.StatusInPreparation, entity.StatusDelivered} {
			f := newTransitionFixture(t, status, entity.DeliveryHome)
			_, err := f.svc.ConfirmDelivery(context.Background(), f.customerID, f.orderID.Hex())
			assert.ErrorIs(t, err, ErrValidation, status)
		}
	})

	t.Run("rejects another customer", func(t *testing.T) {
		f := newTransitionFixture(t, entity.StatusInDelivery, entity.DeliveryHome)
		_, err := f.svc.ConfirmDelivery(context.Background(), primitive.NewObjectID(), f.orderID.Hex())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newTransitionFixture(t, entity.StatusInDelivery, entity.DeliveryHome)
		_, err := f.svc.ConfirmDelivery(context.Background(), f.customerID, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
