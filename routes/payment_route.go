package routes

import (
	paymentController "github.com/Ereklebazanovi/lifeStore-sub000/controllers/payment"

	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	app.Post("/api/orders/:id/pay", paymentController.InitiatePayment)

	// Server-to-server notification from the gateway; authenticated by its
	// signature, not by a bearer token.
	app.Post("/api/payment/callback", paymentController.PaymentCallback)
}
