package controllers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ereklebazanovi/lifeStore-sub000/cache"
	"github.com/Ereklebazanovi/lifeStore-sub000/catalog"
	"github.com/Ereklebazanovi/lifeStore-sub000/configs"
	"github.com/Ereklebazanovi/lifeStore-sub000/inventory"
	"github.com/Ereklebazanovi/lifeStore-sub000/models"
	"github.com/Ereklebazanovi/lifeStore-sub000/responses"
	"github.com/Ereklebazanovi/lifeStore-sub000/store"
)

var productStore = store.NewProducts(configs.GetCollection(configs.DB, "products"))
var catalogCache = cache.New(configs.Redis, 5*time.Minute)

var validate = validator.New()

// GetCatalog returns the storefront product listing: active products,
// ordered by the priority sort. The Mongo fetch goes through the Redis
// cache; the in-process sort is authoritative for display order.
func GetCatalog(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var products []models.Product
	if !catalogCache.Get(ctx, cache.CatalogKey, &products) {
		var err error
		products, err = productStore.List(ctx, true)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching products",
				Result:  nil,
			})
		}
		catalogCache.Set(ctx, cache.CatalogKey, products)
	}

	sorted := catalog.SortProducts(products)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched products",
		Result: &fiber.Map{
			"totalProducts": len(sorted),
			"products":      sorted,
		},
	})
}

// GetProductDetails fetches a single product by id.
func GetProductDetails(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	product, err := productStore.Get(ctx, productID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched product",
		Result: &fiber.Map{
			"product": product,
		},
	})
}

// Only for admin
func AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
			Result:  nil,
		})
	}

	if err := validate.Struct(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
			Result:  nil,
		})
	}

	now := time.Now()
	if product.HasVariants {
		for i := range product.Variants {
			product.Variants[i].ID = uuid.NewString()
			product.Variants[i].StockHistory = []models.StockEntry{{
				Quantity:  product.Variants[i].Stock,
				Reason:    "initial",
				CreatedAt: now,
			}}
		}
		product.SyncAggregates()
	} else {
		product.StockHistory = []models.StockEntry{{
			Quantity:  product.Stock,
			Reason:    "initial",
			CreatedAt: now,
		}}
	}

	if err := productStore.Insert(ctx, &product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting product",
			Result:  nil,
		})
	}

	catalogCache.Invalidate(ctx, cache.CatalogKey)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product added successfully",
		Result: &fiber.Map{
			"product": product,
		},
	})
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	SalePrice     *float64 `json:"salePrice"`
	Images        []string `json:"images"`
	Priority      *int     `json:"priority"`
	IsActive      *bool    `json:"isActive"`
}

// Only for admin
func UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	var reqBody UpdateProductRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
			Result:  nil,
		})
	}

	product, err := productStore.Get(ctx, productID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product",
			Result:  nil,
		})
	}

	if reqBody.Name != nil {
		product.Name = *reqBody.Name
	}
	if reqBody.Description != nil {
		product.Description = *reqBody.Description
	}
	if reqBody.Category != nil {
		product.Category = *reqBody.Category
	}
	if reqBody.Price != nil && !product.HasVariants {
		if *reqBody.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Price cannot be negative",
				Result:  nil,
			})
		}
		product.Price = *reqBody.Price
	}
	if reqBody.OriginalPrice != nil {
		product.OriginalPrice = reqBody.OriginalPrice
	}
	if reqBody.SalePrice != nil && !product.HasVariants {
		product.SalePrice = reqBody.SalePrice
	}
	if reqBody.Images != nil {
		product.Images = reqBody.Images
	}
	if reqBody.Priority != nil {
		product.Priority = *reqBody.Priority
	}
	if reqBody.IsActive != nil {
		product.IsActive = *reqBody.IsActive
	}
	product.UpdatedAt = time.Now()

	if ok, err := replaceProduct(c, ctx, product); !ok {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated successfully",
		Result: &fiber.Map{
			"product": product,
		},
	})
}

// Only for admin. Hard delete; soft delete goes through UpdateProduct with
// isActive=false.
func DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	if err := productStore.Delete(ctx, productID); err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting product",
			Result:  nil,
		})
	}

	catalogCache.Invalidate(ctx, cache.CatalogKey)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product deleted",
		Result:  nil,
	})
}

// replaceProduct writes the product back and maps store errors to responses.
// Returns false with the response already written when the replace failed.
// A version conflict means another admin wrote the document since it was
// read; the client should refetch and retry.
func replaceProduct(c *fiber.Ctx, ctx context.Context, product *models.Product) (bool, error) {
	err := productStore.Replace(ctx, product)
	if err == nil {
		catalogCache.Invalidate(ctx, cache.CatalogKey)
		return true, nil
	}

	switch err {
	case store.ErrVersionConflict:
		return false, c.Status(fiber.StatusConflict).JSON(responses.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Product was modified by someone else, please retry",
			Result:  nil,
		})
	case store.ErrNotFound:
		return false, c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
			Result:  nil,
		})
	default:
		return false, c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving product",
			Result:  nil,
		})
	}
}

// inventoryError maps inventory errors to HTTP responses.
func inventoryError(c *fiber.Ctx, err error) error {
	switch err {
	case inventory.ErrInvalidQuantity, inventory.ErrDerivedStock:
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	case inventory.ErrVariantNotFound:
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Variant not found",
			Result:  nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating stock",
			Result:  nil,
		})
	}
}
