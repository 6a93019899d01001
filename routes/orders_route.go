package routes

import (
	orderController "github.com/Ereklebazanovi/lifeStore-sub000/controllers/orders"
	"github.com/Ereklebazanovi/lifeStore-sub000/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	// Storefront checkout
	app.Post("/api/orders", orderController.PlaceOrder)

	// Admin back-office
	app.Get("/api/admin/orders", middlewares.AdminMiddleware, orderController.ListOrders)
	app.Get("/api/admin/orders/:id", middlewares.AdminMiddleware, orderController.GetOrder)
	app.Put("/api/admin/orders/:id/status", middlewares.AdminMiddleware, orderController.UpdateOrderStatus)
	app.Put("/api/admin/orders/:id/note", middlewares.AdminMiddleware, orderController.SetOrderNote)
	app.Delete("/api/admin/orders/:id", middlewares.AdminMiddleware, orderController.DeleteOrder)

	// Manual order composition
	app.Post("/api/admin/orders/availability", middlewares.AdminMiddleware, orderController.CheckAvailability)
	app.Post("/api/admin/orders/manual", middlewares.AdminMiddleware, orderController.CreateManualOrder)
}
