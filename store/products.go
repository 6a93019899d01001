// Package store wraps the MongoDB collections behind small repositories.
// All writes are whole-document replaces, so a failed write never applies
// partially. Product replaces are guarded by a version check to keep two
// admins from silently overwriting each other's stock edits.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ereklebazanovi/lifeStore-sub000/models"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrVersionConflict = errors.New("document was modified concurrently")
)

type Products struct {
	col *mongo.Collection
}

func NewProducts(col *mongo.Collection) *Products {
	return &Products{col: col}
}

func (r *Products) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List returns products pre-sorted by createdAt descending. The client-side
// catalog sort is authoritative for display; this ordering only makes the
// fetch deterministic.
func (r *Products) List(ctx context.Context, onlyActive bool) ([]models.Product, error) {
	filter := bson.M{}
	if onlyActive {
		filter["isActive"] = true
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Products) ListByCategory(ctx context.Context, category string, onlyActive bool) ([]models.Product, error) {
	filter := bson.M{"category": category}
	if onlyActive {
		filter["isActive"] = true
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Products) Insert(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.Version = 1

	result, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Replace writes the whole product document back, but only if nobody else
// wrote it since it was read: the filter matches on the version the caller
// read, and the stored version is bumped. A concurrent write surfaces as
// ErrVersionConflict instead of a silent overwrite.
func (r *Products) Replace(ctx context.Context, product *models.Product) error {
	readVersion := product.Version
	product.Version = readVersion + 1

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID, "version": readVersion}, product)
	if err != nil {
		product.Version = readVersion
		return err
	}
	if result.MatchedCount == 0 {
		product.Version = readVersion
		// Distinguish a concurrent edit from a vanished document.
		count, err := r.col.CountDocuments(ctx, bson.M{"_id": product.ID})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

func (r *Products) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
