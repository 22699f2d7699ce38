package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// CustomerProfile and OwnerProfile are role-specific payloads; exactly
// one of them is set on a User, matching its Role.
type CustomerProfile struct {
	Address       string `bson:"address" json:"address"`
	PaymentMethod string `bson:"payment_method" json:"paymentMethod"`
}

type OwnerProfile struct {
	TaxID string `bson:"tax_id" json:"taxId"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Phone    string             `bson:"phone" json:"phone"`
	Role     string             `bson:"role" json:"role"`

	Customer *CustomerProfile `bson:"customer,omitempty" json:"customer,omitempty"`
	Owner    *OwnerProfile    `bson:"owner,omitempty" json:"owner,omitempty"`
}
