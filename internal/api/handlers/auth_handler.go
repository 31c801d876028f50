package handlers

import (
	"FoodBuzz-Backend/domain"
	"FoodBuzz-Backend/internal/api/presenters"
	"FoodBuzz-Backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		CreateToken(c *fiber.Ctx) error
	}

	authHandler struct {
		jwtService jwt.JWTService
		validator  *validator.Validate
	}
)

func NewAuthHandler(jwtService jwt.JWTService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		jwtService: jwtService,
		validator:  validator,
	}
}

func (h *authHandler) CreateToken(c *fiber.Ctx) error {
	req := new(domain.CreateTokenRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateToken, err)
	}

	claims := map[string]any{"email": req.Email}
	for key, value := range req.Extra {
		claims[key] = value
	}

	token, err := h.jwtService.GenerateToken(claims)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateToken, err)
	}

	return presenters.SuccessResponse(c, domain.CreateTokenResponse{Token: token}, fiber.StatusOK, domain.MessageSuccessCreateToken)
}
