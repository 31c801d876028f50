package food

import (
	"context"
	"errors"
	"mime/multipart"

	"FoodBuzz-Backend/domain"
	"FoodBuzz-Backend/entities"
	"FoodBuzz-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	PageSize      = 9
	TopFoodsLimit = 6
)

type (
	FoodService interface {
		GetTopFoods(ctx context.Context) ([]*entities.Food, error)
		SearchFoods(ctx context.Context, req domain.SearchFoodsRequest) ([]*entities.Food, int64, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoodsByDonator(ctx context.Context, email string) ([]*entities.Food, error)
		CreateFood(ctx context.Context, req domain.CreateFoodRequest) (*domain.CreateFoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) (*domain.UpdateResult, error)
		DeleteFood(ctx context.Context, id string) (*domain.DeleteResult, error)
		UploadFoodImage(file *multipart.FileHeader) (*domain.UploadFoodImageResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) GetTopFoods(ctx context.Context) ([]*entities.Food, error) {
	return s.foodRepository.FindTop(ctx, TopFoodsLimit)
}

func (s *foodService) SearchFoods(ctx context.Context, req domain.SearchFoodsRequest) ([]*entities.Food, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	skip := int64(page-1) * PageSize

	foods, err := s.foodRepository.Search(ctx, req.Search, req.SortOrder, skip, PageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.foodRepository.Count(ctx, req.Search)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + PageSize - 1) / PageSize
	return foods, totalPages, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrParseObjectID
	}

	food, err := s.foodRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) GetFoodsByDonator(ctx context.Context, email string) ([]*entities.Food, error) {
	return s.foodRepository.FindByDonator(ctx, email)
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest) (*domain.CreateFoodResponse, error) {
	food := &entities.Food{
		FoodName:     req.FoodName,
		FoodImg:      req.FoodImg,
		Quantity:     req.Quantity,
		ExpiredDate:  req.ExpiredDate,
		Location:     req.Location,
		FoodDes:      req.FoodDes,
		DonatorEmail: req.DonatorEmail,
		DonatorName:  req.DonatorName,
		DonatorImg:   req.DonatorImg,
		Status:       req.Status,
	}

	id, err := s.foodRepository.Insert(ctx, food)
	if err != nil {
		return nil, err
	}

	return &domain.CreateFoodResponse{InsertedID: id.Hex()}, nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) (*domain.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrParseObjectID
	}

	food := &entities.Food{
		FoodName:    req.FoodName,
		FoodImg:     req.FoodImg,
		Quantity:    req.Quantity,
		ExpiredDate: req.ExpiredDate,
		Location:    req.Location,
		FoodDes:     req.FoodDes,
	}

	result, err := s.foodRepository.Update(ctx, objectID, food, true)
	if err != nil {
		return nil, err
	}
	return ToUpdateResult(result), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string) (*domain.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrParseObjectID
	}

	deleted, err := s.foodRepository.Delete(ctx, objectID)
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: deleted}, nil
}

func (s *foodService) UploadFoodImage(file *multipart.FileHeader) (*domain.UploadFoodImageResponse, error) {
	objectKey, err := s.s3.UploadFile(
		uuid.New().String(),
		file,
		"foods",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	return &domain.UploadFoodImageResponse{ImageURL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

// ToUpdateResult converts a driver update result into its wire shape.
func ToUpdateResult(result *mongo.UpdateResult) *domain.UpdateResult {
	out := &domain.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = id.Hex()
	}
	return out
}
