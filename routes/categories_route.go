package routes

import (
	controllers "github.com/Ereklebazanovi/lifeStore-sub000/controllers/categories"
	"github.com/Ereklebazanovi/lifeStore-sub000/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CategoriesRoute(app *fiber.App) {
	app.Get("/api/categories", controllers.GetCategories)

	app.Post("/api/admin/categories", middlewares.AdminMiddleware, controllers.AddCategory)
	app.Put("/api/admin/categories/:id", middlewares.AdminMiddleware, controllers.UpdateCategory)
	app.Delete("/api/admin/categories/:id", middlewares.AdminMiddleware, controllers.DeleteCategory)
}
