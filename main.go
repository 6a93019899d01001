package main

import (
	"github.com/Ereklebazanovi/lifeStore-sub000/configs"
	"github.com/Ereklebazanovi/lifeStore-sub000/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	app := fiber.New()

	configs.ConnectDB()

	routes.AccountRoute(app)
	routes.CategoriesRoute(app)
	routes.ProductsRoute(app)
	routes.OrderRoutes(app)
	routes.PaymentRoutes(app)

	app.Listen(":3000")
}
