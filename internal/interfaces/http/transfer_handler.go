package http

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/dto"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/transfer"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
)

// TransferHandler handles spreadsheet export and the resumable CSV import.
type TransferHandler struct {
	export *transfer.ExportUseCase
	imp    *transfer.ImportUseCase
}

// NewTransferHandler builds the handler.
func NewTransferHandler(export *transfer.ExportUseCase, imp *transfer.ImportUseCase) *TransferHandler {
	return &TransferHandler{export: export, imp: imp}
}

// ExportCSV GET /api/export/csv
func (h *TransferHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.export.WriteCSV(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="customers.csv"`)
	return c.Send(buf.Bytes())
}

// ExportXML GET /api/export/xml
func (h *TransferHandler) ExportXML(c *fiber.Ctx) error {
	out, err := h.export.XML()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="customers.xml"`)
	return c.Send(out)
}

// ExportPDF GET /api/export/pdf
func (h *TransferHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.export.PDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="jadwal-service.pdf"`)
	return c.Send(out)
}

// ImportStart POST /api/import
//
// Accepts the CSV as a multipart "file" field or as the raw request body.
// Conflict-free imports commit immediately; otherwise the session is suspended
// until every conflict is resolved.
func (h *TransferHandler) ImportStart(c *fiber.Ctx) error {
	reader, err := importBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	out, err := h.imp.Start(reader)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ImportConflicts GET /api/import/:sessionID/conflicts
func (h *TransferHandler) ImportConflicts(c *fiber.Ctx) error {
	out, err := h.imp.Conflicts(c.Params("sessionID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "import session not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ImportResolve POST /api/import/:sessionID/resolve
func (h *TransferHandler) ImportResolve(c *fiber.Ctx) error {
	var in dto.ResolveConflictRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.imp.Resolve(c.Params("sessionID"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "import session or conflict not found"})
		}
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ImportCancel DELETE /api/import/:sessionID
func (h *TransferHandler) ImportCancel(c *fiber.Ctx) error {
	if err := h.imp.Cancel(c.Params("sessionID")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "import session not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MutationResponse{Success: true})
}

func importBody(c *fiber.Ctx) (*bytes.Reader, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload: %w", err)
		}
		defer f.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(f); err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
		return bytes.NewReader(buf.Bytes()), nil
	}
	if len(c.Body()) == 0 {
		return nil, errors.New("empty import body")
	}
	return bytes.NewReader(c.Body()), nil
}
