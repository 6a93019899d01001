package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ereklebazanovi/lifeStore-sub000/models"
)

type Categories struct {
	col *mongo.Collection
}

func NewCategories(col *mongo.Collection) *Categories {
	return &Categories{col: col}
}

// List returns categories sorted by priority ascending, newest first within
// a tier.
func (r *Categories) List(ctx context.Context, onlyActive bool) ([]models.Category, error) {
	filter := bson.M{}
	if onlyActive {
		filter["isActive"] = true
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{
		{Key: "priority", Value: 1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := r.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Categories) Get(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *Categories) Insert(ctx context.Context, category *models.Category) error {
	category.CreatedAt = time.Now()

	result, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return err
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Categories) Update(ctx context.Context, category *models.Category) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Categories) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
