package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ereklebazanovi/lifeStore-sub000/inventory"
	"github.com/Ereklebazanovi/lifeStore-sub000/models"
	"github.com/Ereklebazanovi/lifeStore-sub000/responses"
	"github.com/Ereklebazanovi/lifeStore-sub000/store"
)

type AdjustStockRequest struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason" validate:"required"`
	Note      string `json:"note"`
}

// AdjustStock sets the absolute stock of a product or one of its variants
// and appends the ledger entry. Only for admin.
func AdjustStock(c *fiber.Ctx) error {
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

	var reqBody AdjustStockRequest
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
			Message: "A reason for the stock change is required",
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

	var entry models.StockEntry
	if reqBody.VariantID != "" {
		entry, err = inventory.SetVariantStock(product, reqBody.VariantID, reqBody.Quantity, reqBody.Reason, reqBody.Note, time.Now())
	} else {
		entry, err = inventory.SetProductStock(product, reqBody.Quantity, reqBody.Reason, reqBody.Note, time.Now())
	}
	if err != nil {
		return inventoryError(c, err)
	}

	if ok, err := replaceProduct(c, ctx, product); !ok {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Stock updated",
		Result: &fiber.Map{
			"entry": entry,
			"stock": product.Stock,
		},
	})
}

// GetStockHistory returns the ledger of a product or, with the variantId
// query param, of one variant.
func GetStockHistory(c *fiber.Ctx) error {
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
			Message: "Error fetching product",
			Result:  nil,
		})
	}

	history := product.StockHistory
	if variantID := c.Query("variantId"); variantID != "" {
		found := false
		for _, v := range product.Variants {
			if v.ID == variantID {
				history = v.StockHistory
				found = true
				break
			}
		}
		if !found {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Variant not found",
				Result:  nil,
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched stock history",
		Result: &fiber.Map{
			"history":      history,
			"currentStock": inventory.Replay(history),
		},
	})
}

type AddVariantRequest struct {
	Name      string   `json:"name" validate:"required"`
	Price     float64  `json:"price" validate:"gte=0"`
	SalePrice *float64 `json:"salePrice"`
	Stock     int      `json:"stock" validate:"gte=0"`
}

// AddVariant appends a variant to a product. Adding the first variant
// converts a simple product into a variant-bearing one; its own stock and
// price become derived from that point on. Only for admin.
func AddVariant(c *fiber.Ctx) error {
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

	var reqBody AddVariantRequest
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
			Message: "Invalid variant data: " + err.Error(),
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

	now := time.Now()
	variant := models.ProductVariant{
		ID:        uuid.NewString(),
		Name:      reqBody.Name,
		Price:     reqBody.Price,
		SalePrice: reqBody.SalePrice,
		Stock:     reqBody.Stock,
		IsActive:  true,
		StockHistory: []models.StockEntry{{
			Quantity:  reqBody.Stock,
			Reason:    "initial",
			CreatedAt: now,
		}},
	}

	product.HasVariants = true
	product.Variants = append(product.Variants, variant)
	product.SyncAggregates()
	product.UpdatedAt = now

	if ok, err := replaceProduct(c, ctx, product); !ok {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Variant added",
		Result: &fiber.Map{
			"variant": variant,
			"product": product,
		},
	})
}

type UpdateVariantRequest struct {
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	SalePrice *float64 `json:"salePrice"`
	IsActive  *bool    `json:"isActive"`
}

// UpdateVariant edits a variant's name, pricing or active flag. Stock moves
// only through AdjustStock so every change lands in the ledger. Only for
// admin.
func UpdateVariant(c *fiber.Ctx) error {
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
	variantID := c.Params("variantId")

	var reqBody UpdateVariantRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
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

	var variant *models.ProductVariant
	for i := range product.Variants {
		if product.Variants[i].ID == variantID {
			variant = &product.Variants[i]
			break
		}
	}
	if variant == nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Variant not found",
			Result:  nil,
		})
	}

	if reqBody.Name != nil {
		variant.Name = *reqBody.Name
	}
	if reqBody.Price != nil {
		if *reqBody.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Price cannot be negative",
				Result:  nil,
			})
		}
		variant.Price = *reqBody.Price
	}
	if reqBody.SalePrice != nil {
		variant.SalePrice = reqBody.SalePrice
	}
	if reqBody.IsActive != nil {
		variant.IsActive = *reqBody.IsActive
	}

	product.SyncAggregates()
	product.UpdatedAt = time.Now()

	if ok, err := replaceProduct(c, ctx, product); !ok {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Variant updated",
		Result: &fiber.Map{
			"product": product,
		},
	})
}

// DeleteVariant removes a variant. Deleting the last one demotes the
// product back to a simple product with zeroed price and stock. Only for
// admin.
func DeleteVariant(c *fiber.Ctx) error {
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
			Message: "Error fetching product",
			Result:  nil,
		})
	}

	if err := inventory.RemoveVariant(product, c.Params("variantId"), time.Now()); err != nil {
		return inventoryError(c, err)
	}

	if ok, err := replaceProduct(c, ctx, product); !ok {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Variant deleted",
		Result: &fiber.Map{
			"product": product,
		},
	})
}
