package request

import (
	"context"
	"errors"
	"fmt"
	"log"

	"FoodBuzz-Backend/domain"
	"FoodBuzz-Backend/entities"
	"FoodBuzz-Backend/internal/utils/mailing"
	"FoodBuzz-Backend/pkg/food"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateRequestRequest) (*domain.CreateRequestResponse, error)
		GetRequestsByRequester(ctx context.Context, email string) ([]*entities.FoodRequest, error)
		GetRequestsByFoodID(ctx context.Context, foodID string) ([]*entities.FoodRequest, error)
		GetRequestByFoodID(ctx context.Context, foodID string) (*entities.FoodRequest, error)
		DeleteRequest(ctx context.Context, id string) (*domain.DeleteResult, error)
		UpdateRequestStatus(ctx context.Context, id string, req domain.UpdateRequestStatusRequest) (*domain.UpdateRequestStatusResponse, error)
	}

	requestService struct {
		requestRepository RequestRepository
		foodRepository    food.FoodRepository
		sendMail          func(toEmail, subject, body string) error
	}
)

func NewRequestService(requestRepository RequestRepository, foodRepository food.FoodRepository) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		foodRepository:    foodRepository,
		sendMail:          mailing.SendMail,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateRequestRequest) (*domain.CreateRequestResponse, error) {
	request := &entities.FoodRequest{
		FoodRequestID:  req.FoodRequestID,
		RequesterEmail: req.RequesterEmail,
		Status:         req.Status,
		FoodName:       req.FoodName,
		FoodImg:        req.FoodImg,
		ExpiredDate:    req.ExpiredDate,
		RequestDate:    req.RequestDate,
		DonatorEmail:   req.DonatorEmail,
	}

	id, err := s.requestRepository.Insert(ctx, request)
	if err != nil {
		return nil, err
	}

	s.notifyDonator(ctx, request)

	return &domain.CreateRequestResponse{InsertedID: id.Hex()}, nil
}

// notifyDonator mails the food's donor about the new request. Best effort:
// a missing food, a dangling reference or an SMTP failure never fails the
// request creation.
func (s *requestService) notifyDonator(ctx context.Context, request *entities.FoodRequest) {
	donatorEmail := request.DonatorEmail
	foodName := request.FoodName

	if donatorEmail == "" {
		foodID, err := primitive.ObjectIDFromHex(request.FoodRequestID)
		if err != nil {
			return
		}
		requestedFood, err := s.foodRepository.FindByID(ctx, foodID)
		if err != nil {
			return
		}
		donatorEmail = requestedFood.DonatorEmail
		foodName = requestedFood.FoodName
	}

	body := fmt.Sprintf(
		"<p>%s requested your food <b>%s</b> on FoodBuzz.</p>",
		request.RequesterEmail, foodName,
	)
	if err := s.sendMail(donatorEmail, "New food request", body); err != nil {
		log.Printf("failed to send request notification to %s: %v", donatorEmail, err)
	}
}

func (s *requestService) GetRequestsByRequester(ctx context.Context, email string) ([]*entities.FoodRequest, error) {
	return s.requestRepository.FindByRequester(ctx, email)
}

func (s *requestService) GetRequestsByFoodID(ctx context.Context, foodID string) ([]*entities.FoodRequest, error) {
	return s.requestRepository.FindByFoodID(ctx, foodID)
}

func (s *requestService) GetRequestByFoodID(ctx context.Context, foodID string) (*entities.FoodRequest, error) {
	request, err := s.requestRepository.FindOneByFoodID(ctx, foodID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string) (*domain.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrParseObjectID
	}

	deleted, err := s.requestRepository.Delete(ctx, objectID)
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: deleted}, nil
}

// UpdateRequestStatus applies the new status to the request, then to the food
// the request references. The two writes are sequential and not wrapped in a
// transaction; a crash between them leaves the collections out of sync. The
// food-side write is not conditioned on matching anything: a dangling
// food_request_id still reports overall success with a zero-match food result.
func (s *requestService) UpdateRequestStatus(ctx context.Context, id string, req domain.UpdateRequestStatusRequest) (*domain.UpdateRequestStatusResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrParseObjectID
	}

	requestUpdate, err := s.requestRepository.UpdateStatus(ctx, objectID, req.Status)
	if err != nil {
		return nil, err
	}
	if requestUpdate.ModifiedCount == 0 {
		return nil, domain.ErrRequestNotFound
	}

	request, err := s.requestRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	foodID, err := primitive.ObjectIDFromHex(request.FoodRequestID)
	if err != nil {
		return nil, domain.ErrParseObjectID
	}

	foodUpdate, err := s.foodRepository.UpdateStatus(ctx, foodID, req.Status)
	if err != nil {
		return nil, err
	}

	return &domain.UpdateRequestStatusResponse{
		RequestUpdate: *food.ToUpdateResult(requestUpdate),
		FoodUpdate:    *food.ToUpdateResult(foodUpdate),
	}, nil
}
