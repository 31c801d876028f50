package request

import (
	"context"
	"errors"
	"testing"

	"FoodBuzz-Backend/domain"
	"FoodBuzz-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRequestRepository struct {
	requests map[primitive.ObjectID]*entities.FoodRequest
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{requests: make(map[primitive.ObjectID]*entities.FoodRequest)}
}

func (f *fakeRequestRepository) Insert(_ context.Context, request *entities.FoodRequest) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	request.ID = id
	f.requests[id] = request
	return id, nil
}

func (f *fakeRequestRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entities.FoodRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return request, nil
}

func (f *fakeRequestRepository) FindByRequester(_ context.Context, email string) ([]*entities.FoodRequest, error) {
	result := make([]*entities.FoodRequest, 0)
	for _, request := range f.requests {
		if request.RequesterEmail == email {
			result = append(result, request)
		}
	}
	return result, nil
}

func (f *fakeRequestRepository) FindByFoodID(_ context.Context, foodID string) ([]*entities.FoodRequest, error) {
	result := make([]*entities.FoodRequest, 0)
	for _, request := range f.requests {
		if request.FoodRequestID == foodID {
			result = append(result, request)
		}
	}
	return result, nil
}

func (f *fakeRequestRepository) FindOneByFoodID(_ context.Context, foodID string) (*entities.FoodRequest, error) {
	for _, request := range f.requests {
		if request.FoodRequestID == foodID {
			return request, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRequestRepository) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	request, ok := f.requests[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	if request.Status == status {
		return &mongo.UpdateResult{MatchedCount: 1}, nil
	}
	request.Status = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeRequestRepository) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.requests[id]; !ok {
		return 0, nil
	}
	delete(f.requests, id)
	return 1, nil
}

type fakeFoodRepository struct {
	foods       map[primitive.ObjectID]*entities.Food
	statusCalls int
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: make(map[primitive.ObjectID]*entities.Food)}
}

func (f *fakeFoodRepository) Insert(_ context.Context, food *entities.Food) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	food.ID = id
	f.foods[id] = food
	return id, nil
}

func (f *fakeFoodRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entities.Food, error) {
	food, ok := f.foods[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return food, nil
}

func (f *fakeFoodRepository) FindTop(_ context.Context, _ int64) ([]*entities.Food, error) {
	return nil, nil
}

func (f *fakeFoodRepository) Search(_ context.Context, _, _ string, _, _ int64) ([]*entities.Food, error) {
	return nil, nil
}

func (f *fakeFoodRepository) Count(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (f *fakeFoodRepository) FindByDonator(_ context.Context, _ string) ([]*entities.Food, error) {
	return nil, nil
}

func (f *fakeFoodRepository) Update(_ context.Context, _ primitive.ObjectID, _ *entities.Food, _ bool) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func (f *fakeFoodRepository) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	f.statusCalls++
	food, ok := f.foods[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	food.Status = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeFoodRepository) Delete(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 0, nil
}

func newTestService(requestRepo *fakeRequestRepository, foodRepo *fakeFoodRepository) (*requestService, *[]string) {
	sent := make([]string, 0)
	service := &requestService{
		requestRepository: requestRepo,
		foodRepository:    foodRepo,
		sendMail: func(toEmail, subject, body string) error {
			sent = append(sent, toEmail)
			return nil
		},
	}
	return service, &sent
}

func TestUpdateRequestStatusSyncsBothCollections(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	foodRepo := newFakeFoodRepository()
	service, _ := newTestService(requestRepo, foodRepo)
	ctx := context.Background()

	foodID, err := foodRepo.Insert(ctx, &entities.Food{FoodName: "Rice", Status: "available"})
	require.NoError(t, err)
	requestID, err := requestRepo.Insert(ctx, &entities.FoodRequest{
		FoodRequestID:  foodID.Hex(),
		RequesterEmail: "requester@example.com",
		Status:         "requested",
	})
	require.NoError(t, err)

	res, err := service.UpdateRequestStatus(ctx, requestID.Hex(), domain.UpdateRequestStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RequestUpdate.ModifiedCount)
	assert.Equal(t, int64(1), res.FoodUpdate.MatchedCount)
	assert.Equal(t, "delivered", requestRepo.requests[requestID].Status)
	assert.Equal(t, "delivered", foodRepo.foods[foodID].Status)
}

func TestUpdateRequestStatusRequestNotFound(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	foodRepo := newFakeFoodRepository()
	service, _ := newTestService(requestRepo, foodRepo)

	foodID, err := foodRepo.Insert(context.Background(), &entities.Food{FoodName: "Rice", Status: "available"})
	require.NoError(t, err)

	_, err = service.UpdateRequestStatus(context.Background(), primitive.NewObjectID().Hex(), domain.UpdateRequestStatusRequest{Status: "delivered"})
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	// the food side must not have been touched
	assert.Zero(t, foodRepo.statusCalls)
	assert.Equal(t, "available", foodRepo.foods[foodID].Status)
}

func TestUpdateRequestStatusUnchangedStatusReportsNotFound(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	foodRepo := newFakeFoodRepository()
	service, _ := newTestService(requestRepo, foodRepo)
	ctx := context.Background()

	requestID, err := requestRepo.Insert(ctx, &entities.FoodRequest{
		FoodRequestID: primitive.NewObjectID().Hex(),
		Status:        "requested",
	})
	require.NoError(t, err)

	// UpdateOne matches but modifies nothing; the workflow keys on the
	// modified count, so this reads as not found
	_, err = service.UpdateRequestStatus(ctx, requestID.Hex(), domain.UpdateRequestStatusRequest{Status: "requested"})
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	assert.Zero(t, foodRepo.statusCalls)
}

func TestUpdateRequestStatusDanglingFoodReference(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	foodRepo := newFakeFoodRepository()
	service, _ := newTestService(requestRepo, foodRepo)
	ctx := context.Background()

	requestID, err := requestRepo.Insert(ctx, &entities.FoodRequest{
		FoodRequestID: primitive.NewObjectID().Hex(), // no such food
		Status:        "requested",
	})
	require.NoError(t, err)

	res, err := service.UpdateRequestStatus(ctx, requestID.Hex(), domain.UpdateRequestStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RequestUpdate.ModifiedCount)
	assert.Equal(t, int64(0), res.FoodUpdate.MatchedCount)
	assert.Equal(t, int64(0), res.FoodUpdate.ModifiedCount)
}

func TestUpdateRequestStatusMalformedFoodReference(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	foodRepo := newFakeFoodRepository()
	service, _ := newTestService(requestRepo, foodRepo)
	ctx := context.Background()

	requestID, err := requestRepo.Insert(ctx, &entities.FoodRequest{
		FoodRequestID: "not-a-hex-id",
		Status:        "requested",
	})
	require.NoError(t, err)

	_, err = service.UpdateRequestStatus(ctx, requestID.Hex(), domain.UpdateRequestStatusRequest{Status: "delivered"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParseObjectID)
	assert.Zero(t, foodRepo.statusCalls)
}

func TestUpdateRequestStatusMalformedRequestID(t *testing.T) {
	service, _ := newTestService(newFakeRequestRepository(), newFakeFoodRepository())

	_, err := service.UpdateRequestStatus(context.Background(), "zzz", domain.UpdateRequestStatusRequest{Status: "delivered"})
	assert.ErrorIs(t, err, domain.ErrParseObjectID)
}

func TestCreateRequestNotifiesDonator(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	foodRepo := newFakeFoodRepository()
	service, sent := newTestService(requestRepo, foodRepo)
	ctx := context.Background()

	foodID, err := foodRepo.Insert(ctx, &entities.Food{
		FoodName:     "Rice",
		DonatorEmail: "donor@example.com",
	})
	require.NoError(t, err)

	res, err := service.CreateRequest(ctx, domain.CreateRequestRequest{
		FoodRequestID:  foodID.Hex(),
		RequesterEmail: "requester@example.com",
		Status:         "requested",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.InsertedID)
	require.Len(t, *sent, 1)
	assert.Equal(t, "donor@example.com", (*sent)[0])
}

func TestCreateRequestMailFailureDoesNotFailCreation(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	foodRepo := newFakeFoodRepository()
	service := &requestService{
		requestRepository: requestRepo,
		foodRepository:    foodRepo,
		sendMail: func(string, string, string) error {
			return errors.New("smtp down")
		},
	}

	res, err := service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		FoodRequestID:  primitive.NewObjectID().Hex(),
		RequesterEmail: "requester@example.com",
		Status:         "requested",
		DonatorEmail:   "donor@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.InsertedID)
}

func TestGetRequestByFoodIDNotFound(t *testing.T) {
	service, _ := newTestService(newFakeRequestRepository(), newFakeFoodRepository())

	_, err := service.GetRequestByFoodID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestDeleteRequest(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	service, _ := newTestService(requestRepo, newFakeFoodRepository())
	ctx := context.Background()

	requestID, err := requestRepo.Insert(ctx, &entities.FoodRequest{Status: "requested"})
	require.NoError(t, err)

	result, err := service.DeleteRequest(ctx, requestID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	result, err = service.DeleteRequest(ctx, requestID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
}
