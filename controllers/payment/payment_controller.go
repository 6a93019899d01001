package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ereklebazanovi/lifeStore-sub000/configs"
	"github.com/Ereklebazanovi/lifeStore-sub000/models"
	"github.com/Ereklebazanovi/lifeStore-sub000/payment"
	"github.com/Ereklebazanovi/lifeStore-sub000/responses"
	"github.com/Ereklebazanovi/lifeStore-sub000/store"
)

var orderCollection = store.NewOrders(configs.GetCollection(configs.DB, "orders"))

var merchantID = configs.EnvMerchantId()
var merchantSecret = configs.EnvMerchantSecret()

// InitiatePayment builds the signed hosted-checkout request for an order.
// The client posts the returned body to the gateway unchanged.
func InitiatePayment(c *fiber.Ctx) error {
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

	order, err := orderCollection.Get(ctx, orderID)
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

	if order.PaymentStatus == models.PaymentStatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order is already paid",
			Result:  nil,
		})
	}

	checkoutReq, err := payment.BuildCheckoutRequest(payment.CheckoutParams{
		OrderID:           order.ID.Hex(),
		MerchantID:        merchantID,
		Description:       "Order for " + order.CustomerName,
		Amount:            order.TotalAmount,
		ServerCallbackURL: configs.EnvServerCallbackUrl(),
		ResponseURL:       configs.EnvResponseUrl(),
	}, merchantSecret)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Failed to sign payment request: " + err.Error(),
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment request created",
		Result: &fiber.Map{
			"request": checkoutReq.Request,
		},
	})
}

// PaymentCallback receives the gateway's server-to-server notification,
// verifies its signature and records the payment outcome on the order.
func PaymentCallback(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var params map[string]string
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid callback format",
			Result:  nil,
		})
	}

	ok, err := payment.VerifySignature(params, merchantSecret)
	if err != nil || !ok {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid payment signature",
			Result:  nil,
		})
	}

	orderID, err := primitive.ObjectIDFromHex(params["order_id"])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order Id in callback",
			Result:  nil,
		})
	}

	paymentStatus := models.PaymentStatusFailed
	if params["order_status"] == "approved" {
		paymentStatus = models.PaymentStatusCompleted
	}

	if err := orderCollection.UpdatePaymentStatus(ctx, orderID, paymentStatus); err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating payment status",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment status updated",
		Result: &fiber.Map{
			"paymentStatus": paymentStatus,
		},
	})
}
