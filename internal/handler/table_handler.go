package handler

import (
	"errors"

	"go-resto-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TableHandler struct {
	tableService service.TableService
}

func NewTableHandler(tableService service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// GetTables handles the meja list
// GET /api/v1/meja
func (h *TableHandler) GetTables(c *fiber.Ctx) error {
	tables, err := h.tableService.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"data": tables})
}

// GetTable handles a single meja fetch (edit form data)
// GET /api/v1/meja/:id
func (h *TableHandler) GetTable(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table ID"})
	}

	table, err := h.tableService.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Meja tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": table})
}

// UpdateTable handles meja rename
// PUT /api/v1/meja/:id
func (h *TableHandler) UpdateTable(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table ID"})
	}

	var req service.TableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	table, fieldErrs, err := h.tableService.Update(id, &req, actingUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Meja tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if fieldErrs != nil {
		return respondValidationError(c, fieldErrs)
	}

	return c.JSON(fiber.Map{
		"message": "Data meja berhasil diperbarui.",
		"data":    table,
	})
}

// BulkDeleteTables deletes every selected meja in one operation
// DELETE /api/v1/meja
func (h *TableHandler) BulkDeleteTables(c *fiber.Ctx) error {
	var req service.BulkDeleteTablesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	fieldErrs, err := h.tableService.BulkDelete(&req, actingUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if fieldErrs != nil {
		return respondValidationError(c, fieldErrs)
	}

	return c.JSON(fiber.Map{"message": "Meja terpilih berhasil dihapus."})
}
