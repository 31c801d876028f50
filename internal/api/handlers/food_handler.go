package handlers

import (
	"errors"
	"strconv"

	"FoodBuzz-Backend/domain"
	"FoodBuzz-Backend/internal/api/presenters"
	"FoodBuzz-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetTopFoods(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetFoodByID(c *fiber.Ctx) error
		GetMyFoods(c *fiber.Ctx) error
		CreateFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) GetTopFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetTopFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foods": foods}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	req := domain.SearchFoodsRequest{
		Search:    c.Query("search"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
	}

	foods, totalPages, err := h.foodService.SearchFoods(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"foods":       foods,
		"total_pages": totalPages,
	}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodByID(c *fiber.Ctx) error {
	foodItem, err := h.foodService.GetFoodByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoods, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foodItem, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetMyFoods(c *fiber.Ctx) error {
	email := c.Query("email")
	decodedEmail := c.Locals("email").(string)
	if email != decodedEmail {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageForbiddenAccess, domain.ErrUserNotAllowed)
	}

	foods, err := h.foodService.GetFoodsByDonator(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foods": foods}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
	}

	res, err := h.foodService.CreateFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFood)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	req := new(domain.UpdateFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	result, err := h.foodService.UpdateFood(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	result, err := h.foodService.DeleteFood(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.foodService.UploadFoodImage(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadFoodImage)
}
