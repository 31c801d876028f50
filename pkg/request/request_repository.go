package request

import (
	"context"

	"FoodBuzz-Backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	RequestRepository interface {
		Insert(ctx context.Context, request *entities.FoodRequest) (primitive.ObjectID, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*entities.FoodRequest, error)
		FindByRequester(ctx context.Context, email string) ([]*entities.FoodRequest, error)
		FindByFoodID(ctx context.Context, foodID string) ([]*entities.FoodRequest, error)
		FindOneByFoodID(ctx context.Context, foodID string) (*entities.FoodRequest, error)
		UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
		Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	}

	requestRepository struct {
		collection *mongo.Collection
	}
)

func NewRequestRepository(db *mongo.Database) RequestRepository {
	return &requestRepository{collection: db.Collection("requestFoods")}
}

func (r *requestRepository) Insert(ctx context.Context, request *entities.FoodRequest) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *requestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.FoodRequest, error) {
	var request entities.FoodRequest
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindByRequester(ctx context.Context, email string) ([]*entities.FoodRequest, error) {
	return r.find(ctx, bson.M{"requester_email": email})
}

// FindByFoodID matches the stored reference as a plain string, exactly as it
// was written at request creation.
func (r *requestRepository) FindByFoodID(ctx context.Context, foodID string) ([]*entities.FoodRequest, error) {
	return r.find(ctx, bson.M{"food_request_id": foodID})
}

func (r *requestRepository) FindOneByFoodID(ctx context.Context, foodID string) (*entities.FoodRequest, error) {
	var request entities.FoodRequest
	if err := r.collection.FindOne(ctx, bson.M{"food_request_id": foodID}).Decode(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
}

func (r *requestRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *requestRepository) find(ctx context.Context, filter bson.M) ([]*entities.FoodRequest, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	requests := make([]*entities.FoodRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
