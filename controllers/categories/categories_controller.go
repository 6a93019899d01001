package controllers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ereklebazanovi/lifeStore-sub000/cache"
	"github.com/Ereklebazanovi/lifeStore-sub000/configs"
	"github.com/Ereklebazanovi/lifeStore-sub000/models"
	"github.com/Ereklebazanovi/lifeStore-sub000/responses"
	"github.com/Ereklebazanovi/lifeStore-sub000/store"
)

var categoryStore = store.NewCategories(configs.GetCollection(configs.DB, "categories"))
var categoryCache = cache.New(configs.Redis, 5*time.Minute)

var validate = validator.New()

// GetCategories lists active categories, priority ascending then newest
// first.
func GetCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var categories []models.Category
	if !categoryCache.Get(ctx, cache.CategoriesKey, &categories) {
		var err error
		categories, err = categoryStore.List(ctx, true)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching categories",
				Result:  nil,
			})
		}
		categoryCache.Set(ctx, cache.CategoriesKey, categories)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched categories",
		Result: &fiber.Map{
			"categories": categories,
		},
	})
}

// Only for admin
func AddCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing category data",
			Result:  nil,
		})
	}

	if err := validate.Struct(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid category data: " + err.Error(),
			Result:  nil,
		})
	}

	if err := categoryStore.Insert(ctx, &category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting category",
			Result:  nil,
		})
	}

	categoryCache.Invalidate(ctx, cache.CategoriesKey)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Category added successfully",
		Result: &fiber.Map{
			"category": category,
		},
	})
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Priority *int    `json:"priority"`
	IsActive *bool   `json:"isActive"`
}

// Only for admin
func UpdateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categoryID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid category Id",
			Result:  nil,
		})
	}

	var reqBody UpdateCategoryRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	category, err := categoryStore.Get(ctx, categoryID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Category not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching category",
			Result:  nil,
		})
	}

	if reqBody.Name != nil {
		category.Name = *reqBody.Name
	}
	if reqBody.Slug != nil {
		category.Slug = *reqBody.Slug
	}
	if reqBody.Priority != nil {
		category.Priority = *reqBody.Priority
	}
	if reqBody.IsActive != nil {
		category.IsActive = *reqBody.IsActive
	}

	if err := categoryStore.Update(ctx, category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving category",
			Result:  nil,
		})
	}

	categoryCache.Invalidate(ctx, cache.CategoriesKey)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Category updated",
		Result: &fiber.Map{
			"category": category,
		},
	})
}

// Only for admin
func DeleteCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categoryID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid category Id",
			Result:  nil,
		})
	}

	if err := categoryStore.Delete(ctx, categoryID); err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Category not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting category",
			Result:  nil,
		})
	}

	categoryCache.Invalidate(ctx, cache.CategoriesKey)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Category deleted",
		Result:  nil,
	})
}
