package handler

import (
	"errors"

	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories handles the category list, newest first. Form menu memakai
// ?order=asc supaya urutan dropdown mengikuti urutan pembuatan.
// GET /api/v1/kategori
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	var (
		categories []model.Category
		err        error
	)
	if c.Query("order") == "asc" {
		categories, err = h.categoryService.ListOldestFirst()
	} else {
		categories, err = h.categoryService.List()
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"data": categories})
}

// GetCategory handles a single category fetch (edit form data)
// GET /api/v1/kategori/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Kategori tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": category})
}

// CreateCategory handles category creation
// POST /api/v1/kategori
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, fieldErrs, err := h.categoryService.Create(&req, actingUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if fieldErrs != nil {
		return respondValidationError(c, fieldErrs)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Kategori baru berhasil ditambahkan.",
		"data":    category,
	})
}

// UpdateCategory handles category update
// PUT /api/v1/kategori/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, fieldErrs, err := h.categoryService.Update(id, &req, actingUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Kategori tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if fieldErrs != nil {
		return respondValidationError(c, fieldErrs)
	}

	return c.JSON(fiber.Map{
		"message": "Data Kategori berhasil diperbarui.",
		"data":    category,
	})
}

// BulkDeleteCategories deletes every selected category in one operation
// DELETE /api/v1/kategori
func (h *CategoryHandler) BulkDeleteCategories(c *fiber.Ctx) error {
	var req service.BulkDeleteCategoriesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	fieldErrs, err := h.categoryService.BulkDelete(&req, actingUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if fieldErrs != nil {
		return respondValidationError(c, fieldErrs)
	}

	return c.JSON(fiber.Map{"message": "Kategori terpilih berhasil dihapus."})
}
