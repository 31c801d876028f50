package domain

import (
	"errors"
)

var (
	MessageSuccessGetRequests         = "food requests retrieved successfully"
	MessageSuccessCreateRequest       = "food request created successfully"
	MessageSuccessDeleteRequest       = "food request deleted successfully"
	MessageSuccessUpdateRequestStatus = "Status updated in both collections"

	MessageFailedGetRequests         = "failed to retrieve food requests"
	MessageFailedCreateRequest       = "failed to create food request"
	MessageFailedDeleteRequest       = "failed to delete food request"
	MessageFailedUpdateRequestStatus = "Failed to update status"
	MessageRequestNotFound           = "Request not found"

	ErrRequestNotFound = errors.New("request not found")
)

type (
	CreateRequestRequest struct {
		FoodRequestID  string `json:"food_request_id" validate:"required"`
		RequesterEmail string `json:"requester_email" validate:"required,email"`
		Status         string `json:"status" validate:"required"`
		FoodName       string `json:"food_name" validate:"omitempty"`
		FoodImg        string `json:"food_img" validate:"omitempty,url"`
		ExpiredDate    string `json:"expired_date" validate:"omitempty,datetime=2006-01-02"`
		RequestDate    string `json:"request_date" validate:"omitempty,datetime=2006-01-02"`
		DonatorEmail   string `json:"donator_email" validate:"omitempty,email"`
	}

	UpdateRequestStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	CreateRequestResponse struct {
		InsertedID string `json:"inserted_id"`
	}

	// UpdateRequestStatusResponse carries both halves of the two-collection
	// status update. FoodUpdate can report zero matches while the call as a
	// whole still succeeds.
	UpdateRequestStatusResponse struct {
		RequestUpdate UpdateResult `json:"request_update"`
		FoodUpdate    UpdateResult `json:"food_update"`
	}
)
