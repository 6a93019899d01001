package routes

import (
	controllers "github.com/Ereklebazanovi/lifeStore-sub000/controllers/accounts"

	"github.com/gofiber/fiber/v2"
)

func AccountRoute(app *fiber.App) {
	app.Post("/api/admin/signin", controllers.AdminSignIn)
}
