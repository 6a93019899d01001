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

type Orders struct {
	col *mongo.Collection
}

func NewOrders(col *mongo.Collection) *Orders {
	return &Orders{col: col}
}

func (r *Orders) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *Orders) List(ctx context.Context, status string) ([]models.Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["orderStatus"] = status
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Insert commits the composed order atomically as one document.
func (r *Orders) Insert(ctx context.Context, order *models.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Orders) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return r.setFields(ctx, id, bson.M{"orderStatus": status})
}

func (r *Orders) UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return r.setFields(ctx, id, bson.M{"paymentStatus": status})
}

func (r *Orders) SetAdminNote(ctx context.Context, id primitive.ObjectID, note string) error {
	return r.setFields(ctx, id, bson.M{"adminNote": note})
}

func (r *Orders) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an order permanently. Admin-only and irreversible.
func (r *Orders) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
