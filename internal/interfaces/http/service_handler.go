package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/dto"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/usecase"
)

// ServiceHandler handles direct edits of service records.
type ServiceHandler struct {
	schedule *usecase.ScheduleUseCase
}

// NewServiceHandler builds the handler.
func NewServiceHandler(schedule *usecase.ScheduleUseCase) *ServiceHandler {
	return &ServiceHandler{schedule: schedule}
}

// Update PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.schedule.UpdateService(c.Params("id"), in); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MutationResponse{Success: true})
}
