package food

import (
	"context"

	"FoodBuzz-Backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	FoodRepository interface {
		Insert(ctx context.Context, food *entities.Food) (primitive.ObjectID, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Food, error)
		FindTop(ctx context.Context, limit int64) ([]*entities.Food, error)
		Search(ctx context.Context, search, sortOrder string, skip, limit int64) ([]*entities.Food, error)
		Count(ctx context.Context, search string) (int64, error)
		FindByDonator(ctx context.Context, email string) ([]*entities.Food, error)
		Update(ctx context.Context, id primitive.ObjectID, food *entities.Food, upsert bool) (*mongo.UpdateResult, error)
		UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
		Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	}

	foodRepository struct {
		collection *mongo.Collection
	}
)

func NewFoodRepository(db *mongo.Database) FoodRepository {
	return &foodRepository{collection: db.Collection("foods")}
}

func (r *foodRepository) Insert(ctx context.Context, food *entities.Food) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *foodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Food, error) {
	var food entities.Food
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindTop(ctx context.Context, limit int64) ([]*entities.Food, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "quantity", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	foods := make([]*entities.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// searchFilter matches food names by case-insensitive substring. An empty
// search term matches everything.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"food_name": bson.M{"$regex": search, "$options": "i"}}
}

func (r *foodRepository) Search(ctx context.Context, search, sortOrder string, skip, limit int64) ([]*entities.Food, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)

	switch sortOrder {
	case "asc":
		opts.SetSort(bson.D{{Key: "expired_date", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "expired_date", Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, searchFilter(search), opts)
	if err != nil {
		return nil, err
	}

	foods := make([]*entities.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) Count(ctx context.Context, search string) (int64, error) {
	return r.collection.CountDocuments(ctx, searchFilter(search))
}

func (r *foodRepository) FindByDonator(ctx context.Context, email string) ([]*entities.Food, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"donator_email": email})
	if err != nil {
		return nil, err
	}

	foods := make([]*entities.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Update sets the donor-editable fields only; status and donor identity are
// never touched here.
func (r *foodRepository) Update(ctx context.Context, id primitive.ObjectID, food *entities.Food, upsert bool) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"food_name":    food.FoodName,
		"food_img":     food.FoodImg,
		"quantity":     food.Quantity,
		"expired_date": food.ExpiredDate,
		"location":     food.Location,
		"food_Des":     food.FoodDes,
	}}

	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(upsert))
}

func (r *foodRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
}

func (r *foodRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
