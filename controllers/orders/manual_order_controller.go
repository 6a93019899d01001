package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ereklebazanovi/lifeStore-sub000/inventory"
	"github.com/Ereklebazanovi/lifeStore-sub000/models"
	"github.com/Ereklebazanovi/lifeStore-sub000/responses"
	"github.com/Ereklebazanovi/lifeStore-sub000/store"
)

// OrderLineRequest is one line of an order being composed. Catalog lines
// carry ProductID (and VariantID for variant SKUs); admin manual lines may
// instead carry a free-text Name and an explicit UnitPrice.
type OrderLineRequest struct {
	ProductID string   `json:"productId"`
	VariantID string   `json:"variantId"`
	Name      string   `json:"name"`
	UnitPrice *float64 `json:"unitPrice"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
}

type CheckAvailabilityRequest struct {
	ProductID    string                `json:"productId" validate:"required"`
	VariantID    string                `json:"variantId"`
	Lines        []inventory.DraftLine `json:"lines"`
	ExcludeIndex *int                  `json:"excludeIndex"`
}

// CheckAvailability computes the available-to-promise stock for one SKU
// while an admin is composing a manual order: raw stock minus what the
// other draft lines already claim. Only for admin.
func CheckAvailability(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody CheckAvailabilityRequest
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
			Message: "productId is required",
			Result:  nil,
		})
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
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

	rawStock, err := inventory.StockFor(product, reqBody.VariantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Variant not found",
			Result:  nil,
		})
	}

	excludeIndex := -1
	if reqBody.ExcludeIndex != nil {
		excludeIndex = *reqBody.ExcludeIndex
	}

	available := inventory.AvailableStock(rawStock, reqBody.ProductID, reqBody.VariantID, reqBody.Lines, excludeIndex)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Computed availability",
		Result: &fiber.Map{
			"rawStock":  rawStock,
			"available": available,
		},
	})
}

type ManualOrderRequest struct {
	CustomerName  string             `json:"customerName" validate:"required"`
	CustomerPhone string             `json:"customerPhone" validate:"required"`
	City          string             `json:"city" validate:"required"`
	Address       string             `json:"address"`
	Comment       string             `json:"comment"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=card cash"`
	Items         []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateManualOrder commits an admin-composed order. Every catalog line is
// re-checked against availability with the other lines counted as claims,
// so two lines of the same SKU cannot oversubscribe it; the order then
// lands atomically as one document. Only for admin.
func CreateManualOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody ManualOrderRequest
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
			Message: "Invalid order data: " + err.Error(),
			Result:  nil,
		})
	}

	items, failStatus, failMsg := resolveOrderLines(ctx, reqBody.Items, true)
	if failMsg != "" {
		return c.Status(failStatus).JSON(responses.ApiResponse{
			Status:  failStatus,
			Message: failMsg,
			Result:  nil,
		})
	}

	order := composeOrder(reqBody.CustomerName, reqBody.CustomerPhone, reqBody.City,
		reqBody.Address, reqBody.Comment, reqBody.PaymentMethod, items)

	if err := orderStore.Insert(ctx, &order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create order",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order created successfully",
		Result: &fiber.Map{
			"order": order,
		},
	})
}

// resolveOrderLines turns requested lines into priced order items. Each
// catalog line's quantity is checked against the available-to-promise
// stock, counting the other lines of the same SKU as claims (the line
// itself is excluded so it does not subtract from its own allowance).
// Returns a non-empty message with a status code on failure.
func resolveOrderLines(ctx context.Context, lines []OrderLineRequest, allowManual bool) ([]models.OrderItem, int, string) {
	// Index-aligned draft view of the request; manual lines keep an empty
	// ProductID and never match a SKU.
	draft := make([]inventory.DraftLine, len(lines))
	for i, line := range lines {
		draft[i] = inventory.DraftLine{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
		}
	}

	items := make([]models.OrderItem, 0, len(lines))
	for i, line := range lines {
		if line.ProductID == "" {
			if !allowManual {
				return nil, fiber.StatusBadRequest, "Each item must reference a product"
			}
			if line.Name == "" || line.UnitPrice == nil {
				return nil, fiber.StatusBadRequest, "Manual items need a name and a unit price"
			}
			items = append(items, models.OrderItem{
				Name:      line.Name,
				UnitPrice: *line.UnitPrice,
				Quantity:  line.Quantity,
				Total:     *line.UnitPrice * float64(line.Quantity),
			})
			continue
		}

		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			return nil, fiber.StatusBadRequest, "Invalid product Id"
		}

		product, err := productStore.Get(ctx, productID)
		if err != nil {
			if err == store.ErrNotFound {
				return nil, fiber.StatusNotFound, "Product not found"
			}
			return nil, fiber.StatusInternalServerError, "Error fetching product"
		}

		rawStock, err := inventory.StockFor(product, line.VariantID)
		if err != nil {
			return nil, fiber.StatusNotFound, "Variant not found"
		}

		available := inventory.AvailableStock(rawStock, line.ProductID, line.VariantID, draft, i)
		if line.Quantity > available {
			return nil, fiber.StatusBadRequest, "Insufficient stock for " + product.Name
		}

		name := product.Name
		unitPrice := product.EffectivePrice()
		if line.VariantID != "" {
			for _, v := range product.Variants {
				if v.ID == line.VariantID {
					name = product.Name + " / " + v.Name
					unitPrice = v.EffectivePrice()
					break
				}
			}
		}
		if line.UnitPrice != nil && allowManual {
			unitPrice = *line.UnitPrice
		}

		items = append(items, models.OrderItem{
			ProductID: productID,
			VariantID: line.VariantID,
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  line.Quantity,
			Total:     unitPrice * float64(line.Quantity),
		})
	}

	return items, 0, ""
}
