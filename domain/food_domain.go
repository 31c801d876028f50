package domain

import (
	"errors"
)

var (
	MessageSuccessGetFoods        = "foods retrieved successfully"
	MessageSuccessCreateFood      = "food created successfully"
	MessageSuccessUpdateFood      = "food updated successfully"
	MessageSuccessDeleteFood      = "food deleted successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"

	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedCreateFood      = "failed to create food"
	MessageFailedUpdateFood      = "failed to update food"
	MessageFailedDeleteFood      = "failed to delete food"
	MessageFailedUploadFoodImage = "failed to upload food image"

	ErrFoodNotFound = errors.New("food not found")
)

type (
	CreateFoodRequest struct {
		FoodName     string `json:"food_name" validate:"required"`
		FoodImg      string `json:"food_img" validate:"omitempty,url"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
		ExpiredDate  string `json:"expired_date" validate:"required,datetime=2006-01-02"`
		Location     string `json:"location" validate:"required"`
		FoodDes      string `json:"food_Des" validate:"omitempty"`
		DonatorEmail string `json:"donator_email" validate:"required,email"`
		DonatorName  string `json:"donator_name" validate:"omitempty"`
		DonatorImg   string `json:"donator_img" validate:"omitempty,url"`
		Status       string `json:"status" validate:"required"`
	}

	UpdateFoodRequest struct {
		FoodName    string `json:"food_name" validate:"required"`
		FoodImg     string `json:"food_img" validate:"omitempty,url"`
		Quantity    int    `json:"quantity" validate:"required,min=1"`
		ExpiredDate string `json:"expired_date" validate:"required,datetime=2006-01-02"`
		Location    string `json:"location" validate:"required"`
		FoodDes     string `json:"food_Des" validate:"omitempty"`
	}

	SearchFoodsRequest struct {
		Search    string
		SortOrder string // "asc", "desc" or empty for unsorted
		Page      int
	}

	CreateFoodResponse struct {
		InsertedID string `json:"inserted_id"`
	}

	UploadFoodImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
