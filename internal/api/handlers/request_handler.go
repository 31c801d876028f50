package handlers

import (
	"errors"

	"FoodBuzz-Backend/domain"
	"FoodBuzz-Backend/internal/api/presenters"
	"FoodBuzz-Backend/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		GetMyRequests(c *fiber.Ctx) error
		GetRequestsByFoodID(c *fiber.Ctx) error
		GetRequestByFoodID(c *fiber.Ctx) error
		CreateRequest(c *fiber.Ctx) error
		DeleteRequest(c *fiber.Ctx) error
		UpdateRequestStatus(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) GetMyRequests(c *fiber.Ctx) error {
	email := c.Query("email")
	decodedEmail := c.Locals("email").(string)
	if email != decodedEmail {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageForbiddenAccess, domain.ErrUserNotAllowed)
	}

	requests, err := h.requestService.GetRequestsByRequester(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"requests": requests}, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) GetRequestsByFoodID(c *fiber.Ctx) error {
	requests, err := h.requestService.GetRequestsByFoodID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"requests": requests}, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) GetRequestByFoodID(c *fiber.Ctx) error {
	req, err := h.requestService.GetRequestByFoodID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRequestNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, req, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) CreateRequest(c *fiber.Ctx) error {
	req := new(domain.CreateRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	res, err := h.requestService.CreateRequest(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRequest)
}

func (h *requestHandler) DeleteRequest(c *fiber.Ctx) error {
	result, err := h.requestService.DeleteRequest(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRequest, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessDeleteRequest)
}

// UpdateRequestStatus drives the two-collection status update. A request that
// was not modified answers 404; every other failure collapses to a generic 500
// with no partial-result detail.
func (h *requestHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateRequestStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRequestStatus, err)
	}

	res, err := h.requestService.UpdateRequestStatus(c.Context(), c.Params("id"), *req)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRequestNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRequestStatus, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRequestStatus)
}
