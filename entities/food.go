package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Food struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodName     string             `bson:"food_name" json:"food_name"`
	FoodImg      string             `bson:"food_img" json:"food_img"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	ExpiredDate  string             `bson:"expired_date" json:"expired_date"`
	Location     string             `bson:"location" json:"location"`
	FoodDes      string             `bson:"food_Des" json:"food_Des"`
	DonatorEmail string             `bson:"donator_email" json:"donator_email"`
	DonatorName  string             `bson:"donator_name,omitempty" json:"donator_name,omitempty"`
	DonatorImg   string             `bson:"donator_img,omitempty" json:"donator_img,omitempty"`
	Status       string             `bson:"status" json:"status"` // "available", "requested", "delivered"
}
