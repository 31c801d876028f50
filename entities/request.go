package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodRequest references a Food by the hex of its _id, stored as a plain
// string. Nothing enforces the reference: a deleted food leaves the request
// dangling.
type FoodRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodRequestID  string             `bson:"food_request_id" json:"food_request_id"`
	RequesterEmail string             `bson:"requester_email" json:"requester_email"`
	Status         string             `bson:"status" json:"status"`
	FoodName       string             `bson:"food_name,omitempty" json:"food_name,omitempty"`
	FoodImg        string             `bson:"food_img,omitempty" json:"food_img,omitempty"`
	ExpiredDate    string             `bson:"expired_date,omitempty" json:"expired_date,omitempty"`
	RequestDate    string             `bson:"request_date,omitempty" json:"request_date,omitempty"`
	DonatorEmail   string             `bson:"donator_email,omitempty" json:"donator_email,omitempty"`
}
