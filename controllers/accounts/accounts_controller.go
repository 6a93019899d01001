package controllers

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ereklebazanovi/lifeStore-sub000/configs"
	"github.com/Ereklebazanovi/lifeStore-sub000/models"
	"github.com/Ereklebazanovi/lifeStore-sub000/responses"
)

var adminCollection *mongo.Collection = configs.GetCollection(configs.DB, "admins")

var jwtSecret = os.Getenv("JWT_SECRET")

// AdminSignIn checks credentials against the admins collection and issues a
// bearer token for the back-office.
func AdminSignIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	var admin models.AdminUser
	err := adminCollection.FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid email or password",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching admin account",
			Result:  nil,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqBody.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
			Result:  nil,
		})
	}

	claims := jwt.MapClaims{
		"id":   admin.Id.Hex(),
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating token",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Signed in",
		Result: &fiber.Map{
			"token": signedToken,
			"name":  admin.Name,
		},
	})
}
