package controllers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ereklebazanovi/lifeStore-sub000/checkout"
	"github.com/Ereklebazanovi/lifeStore-sub000/configs"
	"github.com/Ereklebazanovi/lifeStore-sub000/models"
	"github.com/Ereklebazanovi/lifeStore-sub000/responses"
	"github.com/Ereklebazanovi/lifeStore-sub000/store"
)

var orderStore = store.NewOrders(configs.GetCollection(configs.DB, "orders"))
var productStore = store.NewProducts(configs.GetCollection(configs.DB, "products"))

var validate = validator.New()

type PlaceOrderRequest struct {
	CustomerName  string             `json:"customerName" validate:"required"`
	CustomerPhone string             `json:"customerPhone" validate:"required"`
	City          string             `json:"city" validate:"required"`
	Address       string             `json:"address" validate:"required"`
	Comment       string             `json:"comment"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=card cash"`
	Items         []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// PlaceOrder is the storefront checkout: it resolves the requested lines
// against current stock, computes the totals and commits the order as a
// single document.
func PlaceOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody PlaceOrderRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	if err := validate.Struct(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
			Result:  nil,
		})
	}

	// Checkout lines must reference catalog SKUs; free-text lines are an
	// admin-only feature, so allowManual is off here.
	items, failStatus, failMsg := resolveOrderLines(ctx, reqBody.Items, false)
	if failMsg != "" {
		return c.Status(failStatus).JSON(responses.ApiResponse{
			Status:  failStatus,
			Message: failMsg,
			Result:  nil,
		})
	}

	order := composeOrder(reqBody.CustomerName, reqBody.CustomerPhone, reqBody.City,
		reqBody.Address, reqBody.Comment, reqBody.PaymentMethod, items)

	if err := orderStore.Insert(ctx, &order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create order",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order created successfully",
		Result: &fiber.Map{
			"order": order,
		},
	})
}

// composeOrder assembles the order document from resolved lines.
func composeOrder(name, phone, city, address, comment, paymentMethod string, items []models.OrderItem) models.Order {
	lines := make([]checkout.Line, len(items))
	for i, item := range items {
		lines[i] = checkout.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity}
	}
	totals := checkout.ComputeTotals(lines, city)

	return models.Order{
		CustomerName:  name,
		CustomerPhone: phone,
		City:          city,
		Address:       address,
		Comment:       comment,
		Items:         items,
		Subtotal:      totals.Subtotal,
		ShippingCost:  totals.ShippingCost,
		TotalAmount:   totals.Total,
		OrderStatus:   models.OrderStatusPending,
		PaymentMethod: paymentMethod,
		PaymentStatus: models.PaymentStatusPending,
	}
}

// Only for admin
func ListOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := orderStore.List(ctx, c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched orders",
		Result: &fiber.Map{
			"totalOrders": len(orders),
			"orders":      orders,
		},
	})
}

// Only for admin
func GetOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order Id",
			Result:  nil,
		})
	}

	order, err := orderStore.Get(ctx, orderID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching order",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched order",
		Result: &fiber.Map{
			"order": order,
		},
	})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed delivered cancelled"`
}

// UpdateOrderStatus moves an order along pending → confirmed → delivered,
// or cancels it. Terminal states admit no further transitions. Only for
// admin.
func UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order Id",
			Result:  nil,
		})
	}

	var reqBody UpdateOrderStatusRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	if err := validate.Struct(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown order status",
			Result:  nil,
		})
	}

	order, err := orderStore.Get(ctx, orderID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching order",
			Result:  nil,
		})
	}

	if !models.CanTransition(order.OrderStatus, reqBody.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Cannot move order from " + order.OrderStatus + " to " + reqBody.Status,
			Result:  nil,
		})
	}

	if err := orderStore.UpdateStatus(ctx, orderID, reqBody.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating order status",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order status updated",
		Result: &fiber.Map{
			"orderStatus": reqBody.Status,
		},
	})
}

// Only for admin
func SetOrderNote(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order Id",
			Result:  nil,
		})
	}

	var reqBody struct {
		Note string `json:"note"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	if err := orderStore.SetAdminNote(ctx, orderID, reqBody.Note); err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving note",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Note saved",
		Result:  nil,
	})
}

// DeleteOrder removes an order permanently. Only for admin; irreversible.
func DeleteOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order Id",
			Result:  nil,
		})
	}

	if err := orderStore.Delete(ctx, orderID); err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting order",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order deleted",
		Result:  nil,
	})
}
