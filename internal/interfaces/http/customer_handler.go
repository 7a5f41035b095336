package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/dto"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/usecase"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
)

// CustomerHandler handles customer CRUD plus the contact action.
type CustomerHandler struct {
	customers *usecase.CustomerUseCase
	schedule  *usecase.ScheduleUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(customers *usecase.CustomerUseCase, schedule *usecase.ScheduleUseCase) *CustomerHandler {
	return &CustomerHandler{customers: customers, schedule: schedule}
}

// List GET /api/customers?refresh=true
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh", false)
	views, err := h.customers.ListViews(refresh)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(views)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	view, err := h.customers.GetView(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(view)
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	view, err := h.customers.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "a customer with that ID already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.customers.Update(c.Params("id"), in); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MutationResponse{Success: true})
}

// Delete DELETE /api/customers/:id
//
// Removes the customer and all its service records. Partial failures leave the
// customer row in place so the operation can be retried.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.customers.Delete(c.Params("id")); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MutationResponse{Success: true})
}

// ContactAction POST /api/customers/:id/contact
func (h *CustomerHandler) ContactAction(c *fiber.Ctx) error {
	var in dto.ContactActionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.schedule.ApplyContactAction(c.Params("id"), in); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MutationResponse{Success: true})
}

// mutationError maps domain errors onto the shared mutation response shape.
func mutationError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicate):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.MutationResponse{Success: false, Error: err.Error()})
}
