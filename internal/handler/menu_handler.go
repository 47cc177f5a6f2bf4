package handler

import (
	"errors"

	"go-resto-backoffice/internal/service"
	"go-resto-backoffice/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// menuRequestFromForm reads the multipart form fields; harga tetap string
// berformat dan dinormalisasi di service.
func menuRequestFromForm(c *fiber.Ctx) *service.MenuRequest {
	return &service.MenuRequest{
		Nama:       c.FormValue("nama"),
		IDKategori: c.FormValue("id_kategori"),
		HargaModal: c.FormValue("harga_modal"),
		HargaJual:  c.FormValue("harga_jual"),
		Deskripsi:  c.FormValue("deskripsi"),
	}
}

// GetMenus handles the menu list with category preloaded
// GET /api/v1/menu
func (h *MenuHandler) GetMenus(c *fiber.Ctx) error {
	menus, err := h.menuService.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"data": menus})
}

// GetMenu handles a single menu fetch (edit form data)
// GET /api/v1/menu/:id
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid menu ID"})
	}

	menu, err := h.menuService.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Menu tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": menu})
}

// ShowMenu returns the display payload: harga diformat, umur baris relatif
// GET /api/v1/menu/:id/show
func (h *MenuHandler) ShowMenu(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid menu ID"})
	}

	show, err := h.menuService.Show(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Menu tidak ditemukan"})
	}
	return c.JSON(show)
}

// CreateMenu handles menu creation from a multipart form (optional foto)
// POST /api/v1/menu
func (h *MenuHandler) CreateMenu(c *fiber.Ctx) error {
	req := menuRequestFromForm(c)

	var upload *storage.Upload
	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		up, closer, err := storage.UploadFromFileHeader(fh)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid file upload"})
		}
		defer closer.Close()
		upload = up
	}

	menu, fieldErrs, err := h.menuService.Create(req, upload, actingUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if fieldErrs != nil {
		return respondValidationError(c, fieldErrs)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Menu baru berhasil ditambahkan.",
		"data":    menu,
	})
}

// UpdateMenu handles menu update; foto baru menggantikan file lama
// PUT /api/v1/menu/:id
func (h *MenuHandler) UpdateMenu(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid menu ID"})
	}

	req := menuRequestFromForm(c)

	var upload *storage.Upload
	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		up, closer, err := storage.UploadFromFileHeader(fh)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid file upload"})
		}
		defer closer.Close()
		upload = up
	}

	menu, fieldErrs, err := h.menuService.Update(id, req, upload, actingUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Menu tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if fieldErrs != nil {
		return respondValidationError(c, fieldErrs)
	}

	return c.JSON(fiber.Map{
		"message": "Data menu berhasil diperbarui.",
		"data":    menu,
	})
}

// DestroyMenu deletes one menu by id
// DELETE /api/v1/menu/:id
func (h *MenuHandler) DestroyMenu(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid menu ID"})
	}

	if err := h.menuService.Destroy(id, actingUserID(c)); err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Menu tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Data menu berhasil dihapus."})
}
