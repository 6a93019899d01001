package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdminUser is a back-office account. The storefront itself sells to guests;
// only admins sign in.
type AdminUser struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Password string             `bson:"password" json:"-" validate:"required,min=8"`
}
