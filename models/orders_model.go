package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// OrderItem is a single line of an order. ProductID/VariantID reference a
// catalog SKU; admin manual orders may instead carry a free-text Name with no
// product reference.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	VariantID string             `bson:"variantId,omitempty" json:"variantId,omitempty"`
	Name      string             `bson:"name" json:"name"`
	UnitPrice float64            `bson:"unitPrice" json:"unitPrice"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Total     float64            `bson:"total" json:"total"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	CustomerPhone string             `bson:"customerPhone" json:"customerPhone"`
	City          string             `bson:"city" json:"city"`
	Address       string             `bson:"address" json:"address"`
	Comment       string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	ShippingCost  float64            `bson:"shippingCost" json:"shippingCost"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	OrderStatus   string             `bson:"orderStatus" json:"orderStatus"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	AdminNote     string             `bson:"adminNote,omitempty" json:"adminNote,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsTerminalStatus reports whether an order status admits no further
// transitions.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// CanTransition reports whether an order may move from one status to another.
// The forward chain is pending → confirmed → delivered; cancellation is
// allowed from any non-terminal status.
func CanTransition(from, to string) bool {
	if IsTerminalStatus(from) {
		return false
	}
	switch to {
	case OrderStatusConfirmed:
		return from == OrderStatusPending
	case OrderStatusDelivered:
		return from == OrderStatusConfirmed
	case OrderStatusCancelled:
		return true
	default:
		return false
	}
}
