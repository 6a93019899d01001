package routes

import (
	controllers "github.com/Ereklebazanovi/lifeStore-sub000/controllers/products"
	"github.com/Ereklebazanovi/lifeStore-sub000/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App) {
	// Storefront
	app.Get("/api/catalog", controllers.GetCatalog)
	app.Get("/api/products/:id", controllers.GetProductDetails)

	// Admin back-office
	app.Post("/api/admin/products", middlewares.AdminMiddleware, controllers.AddProduct)
	app.Put("/api/admin/products/:id", middlewares.AdminMiddleware, controllers.UpdateProduct)
	app.Delete("/api/admin/products/:id", middlewares.AdminMiddleware, controllers.DeleteProduct)

	// Stock ledger
	app.Post("/api/admin/products/:id/stock", middlewares.AdminMiddleware, controllers.AdjustStock)
	app.Get("/api/admin/products/:id/stock-history", middlewares.AdminMiddleware, controllers.GetStockHistory)

	// Variants
	app.Post("/api/admin/products/:id/variants", middlewares.AdminMiddleware, controllers.AddVariant)
	app.Put("/api/admin/products/:id/variants/:variantId", middlewares.AdminMiddleware, controllers.UpdateVariant)
	app.Delete("/api/admin/products/:id/variants/:variantId", middlewares.AdminMiddleware, controllers.DeleteVariant)
}
