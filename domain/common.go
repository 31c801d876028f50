package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "Unauthorized access"
	MessageForbiddenAccess      = "Forbidden access"

	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrParseObjectID  = errors.New("failed to parse object id")
)

// UpdateResult mirrors the driver's update outcome on the wire.
type UpdateResult struct {
	MatchedCount  int64  `json:"matched_count"`
	ModifiedCount int64  `json:"modified_count"`
	UpsertedCount int64  `json:"upserted_count"`
	UpsertedID    string `json:"upserted_id,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
