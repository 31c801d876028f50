package food

import (
	"context"
	"testing"

	"FoodBuzz-Backend/domain"
	"FoodBuzz-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeFoodRepository struct {
	foods map[primitive.ObjectID]*entities.Food

	total int64

	lastSearch    string
	lastSortOrder string
	lastSkip      int64
	lastLimit     int64
	lastUpsert    bool

	updateResult *mongo.UpdateResult
	statusCalls  []string
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

func (f *fakeFoodRepository) FindTop(_ context.Context, limit int64) ([]*entities.Food, error) {
	f.lastLimit = limit
	return []*entities.Food{}, nil
}

func (f *fakeFoodRepository) Search(_ context.Context, search, sortOrder string, skip, limit int64) ([]*entities.Food, error) {
	f.lastSearch = search
	f.lastSortOrder = sortOrder
	f.lastSkip = skip
	f.lastLimit = limit
	return []*entities.Food{}, nil
}

func (f *fakeFoodRepository) Count(_ context.Context, search string) (int64, error) {
	return f.total, nil
}

func (f *fakeFoodRepository) FindByDonator(_ context.Context, email string) ([]*entities.Food, error) {
	result := make([]*entities.Food, 0)
	for _, food := range f.foods {
		if food.DonatorEmail == email {
			result = append(result, food)
		}
	}
	return result, nil
}

func (f *fakeFoodRepository) Update(_ context.Context, id primitive.ObjectID, food *entities.Food, upsert bool) (*mongo.UpdateResult, error) {
	f.lastUpsert = upsert
	if f.updateResult != nil {
		return f.updateResult, nil
	}
	if _, ok := f.foods[id]; ok {
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

func (f *fakeFoodRepository) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	f.statusCalls = append(f.statusCalls, status)
	food, ok := f.foods[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	food.Status = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeFoodRepository) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.foods[id]; !ok {
		return 0, nil
	}
	delete(f.foods, id)
	return 1, nil
}

func TestSearchFoodsPagination(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int
		wantSkip       int64
		wantTotalPages int64
	}{
		{"exact multiple", 18, 1, 0, 2},
		{"partial last page", 19, 2, 9, 3},
		{"empty collection", 0, 1, 0, 0},
		{"page below one defaults to first", 5, 0, 0, 1},
		{"page beyond range still queried", 5, 100, 891, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeFoodRepository()
			repo.total = tt.total
			service := NewFoodService(repo, nil)

			foods, totalPages, err := service.SearchFoods(context.Background(), domain.SearchFoodsRequest{Page: tt.page})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotalPages, totalPages)
			assert.Equal(t, tt.wantSkip, repo.lastSkip)
			assert.Equal(t, int64(PageSize), repo.lastLimit)
			assert.NotNil(t, foods)
		})
	}
}

func TestSearchFoodsForwardsFilter(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil)

	_, _, err := service.SearchFoods(context.Background(), domain.SearchFoodsRequest{
		Search:    "rice",
		SortOrder: "desc",
		Page:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, "rice", repo.lastSearch)
	assert.Equal(t, "desc", repo.lastSortOrder)
}

func TestGetTopFoodsLimit(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil)

	_, err := service.GetTopFoods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(TopFoodsLimit), repo.lastLimit)
}

func TestCreateThenGetFoodByID(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil)

	res, err := service.CreateFood(context.Background(), domain.CreateFoodRequest{
		FoodName:     "Rice",
		Quantity:     5,
		ExpiredDate:  "2026-09-30",
		Location:     "Dhaka",
		DonatorEmail: "donor@example.com",
		Status:       "available",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.InsertedID)

	food, err := service.GetFoodByID(context.Background(), res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", food.FoodName)
	assert.Equal(t, 5, food.Quantity)
	assert.Equal(t, res.InsertedID, food.ID.Hex())
}

func TestGetFoodByIDErrors(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil)

	_, err := service.GetFoodByID(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, domain.ErrParseObjectID)

	_, err = service.GetFoodByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestUpdateFoodUpserts(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil)

	id := primitive.NewObjectID()
	result, err := service.UpdateFood(context.Background(), id.Hex(), domain.UpdateFoodRequest{
		FoodName:    "Bread",
		Quantity:    2,
		ExpiredDate: "2026-10-01",
		Location:    "Chittagong",
	})
	require.NoError(t, err)
	assert.True(t, repo.lastUpsert)
	assert.Equal(t, int64(1), result.UpsertedCount)
	assert.Equal(t, id.Hex(), result.UpsertedID)
}

func TestDeleteFood(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, nil)

	res, err := service.CreateFood(context.Background(), domain.CreateFoodRequest{
		FoodName:     "Rice",
		Quantity:     1,
		ExpiredDate:  "2026-09-30",
		Location:     "Dhaka",
		DonatorEmail: "donor@example.com",
		Status:       "available",
	})
	require.NoError(t, err)

	result, err := service.DeleteFood(context.Background(), res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	result, err = service.DeleteFood(context.Background(), res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)

	_, err = service.DeleteFood(context.Background(), "zzz")
	assert.ErrorIs(t, err, domain.ErrParseObjectID)
}
