package service

import (
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"go-resto-backoffice/internal/jobs"
	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/repository"
	"go-resto-backoffice/internal/ws"
	"go-resto-backoffice/pkg/format"
	"go-resto-backoffice/pkg/storage"
	"go-resto-backoffice/pkg/validator"

	"github.com/google/uuid"
)

var ErrMenuNotFound = errors.New("menu not found")

const maxPhotoSize = 2 << 20 // 2MB

var allowedPhotoExts = map[string]bool{
	".jpeg": true,
	".png":  true,
	".jpg":  true,
	".gif":  true,
	".svg":  true,
}

type MenuService interface {
	List() ([]model.Menu, error)
	GetByID(id uuid.UUID) (*model.Menu, error)
	Show(id uuid.UUID) (*model.MenuShowResponse, error)
	Create(req *MenuRequest, photo *storage.Upload, userID *uuid.UUID) (*model.Menu, map[string]string, error)
	Update(id uuid.UUID, req *MenuRequest, photo *storage.Upload, userID *uuid.UUID) (*model.Menu, map[string]string, error)
	Destroy(id uuid.UUID, userID *uuid.UUID) error
}

// MenuRequest carries form fields as submitted: harga masih berupa string
// berformat ribuan ("15.000") dan dinormalisasi sebelum disimpan.
type MenuRequest struct {
	Nama       string `json:"nama" validate:"required,max=50"`
	IDKategori string `json:"id_kategori" validate:"required,uuid"`
	HargaModal string `json:"harga_modal" validate:"required,priceformat"`
	HargaJual  string `json:"harga_jual" validate:"required,priceformat"`
	Deskripsi  string `json:"deskripsi"`
}

var menuMessages = map[string]string{
	"nama.required": "Nama wajib diisi.",
	"nama.max":      "Nama tidak boleh lebih dari 50 karakter.",

	"id_kategori.required": "Kategori wajib dipilih.",
	"id_kategori.uuid":     "Kategori yang dipilih tidak valid.",

	"harga_modal.required":    "Harga modal wajib diisi.",
	"harga_modal.priceformat": "Harga modal harus berupa angka.",

	"harga_jual.required":    "Harga jual wajib diisi.",
	"harga_jual.priceformat": "Harga jual harus berupa angka.",
}

const (
	msgMenuCategoryInvalid = "Kategori yang dipilih tidak valid."
	msgPhotoNotImage       = "Foto profil harus berupa gambar."
	msgPhotoBadFormat      = "Foto profil harus berformat: jpeg, png, jpg, gif, atau svg."
	msgPhotoTooLarge       = "Ukuran foto profil tidak boleh lebih dari 2MB."
)

type menuService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
	activityRepo repository.ActivityLogRepository
	dispatcher   jobs.Dispatcher
	hub          *ws.Hub
	photos       *storage.PhotoStorage
}

func NewMenuService(
	menuRepo repository.MenuRepository,
	categoryRepo repository.CategoryRepository,
	activityRepo repository.ActivityLogRepository,
	dispatcher jobs.Dispatcher,
	hub *ws.Hub,
	photos *storage.PhotoStorage,
) MenuService {
	return &menuService{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
		activityRepo: activityRepo,
		dispatcher:   dispatcher,
		hub:          hub,
		photos:       photos,
	}
}

func (s *menuService) List() ([]model.Menu, error) {
	return s.menuRepo.FindAll()
}

func (s *menuService) GetByID(id uuid.UUID) (*model.Menu, error) {
	menu, err := s.menuRepo.FindByID(id)
	if err != nil {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

// Show builds the display payload: harga jual diformat ribuan dan umur
// baris ditampilkan relatif.
func (s *menuService) Show(id uuid.UUID) (*model.MenuShowResponse, error) {
	menu, err := s.menuRepo.FindByID(id)
	if err != nil {
		return nil, ErrMenuNotFound
	}

	categoryName := ""
	if menu.Category != nil {
		categoryName = menu.Category.Name
	}
	foto := ""
	if menu.PhotoPath != nil {
		foto = *menu.PhotoPath
	}

	return &model.MenuShowResponse{
		Nama:      menu.Name,
		Kategori:  categoryName,
		HargaJual: format.FormatPrice(menu.SalePrice),
		Deskripsi: menu.Description,
		Foto:      foto,
		Diff:      format.DiffForHumans(menu.CreatedAt, time.Now()),
	}, nil
}

func (s *menuService) Create(req *MenuRequest, photo *storage.Upload, userID *uuid.UUID) (*model.Menu, map[string]string, error) {
	fieldErrs, categoryID, err := s.validateRequest(req, photo)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	// Harga sudah lolos priceformat, tinggal dinormalisasi
	costPrice, _ := format.ParsePrice(req.HargaModal)
	salePrice, _ := format.ParsePrice(req.HargaJual)

	var photoPath *string
	if photo != nil {
		path, err := s.photos.Save(photo)
		if err != nil {
			return nil, nil, err
		}
		photoPath = &path
	}

	menu := &model.Menu{
		Name:        req.Nama,
		CategoryID:  categoryID,
		CostPrice:   costPrice,
		SalePrice:   salePrice,
		Description: req.Deskripsi,
		PhotoPath:   photoPath,
	}
	if err := s.menuRepo.Create(menu); err != nil {
		return nil, nil, err
	}

	s.notify(jobs.ActionStore, menu.Name)
	s.recordActivity(userID, "menambah menu baru "+menu.Name)
	s.hub.Publish("menu_created", map[string]interface{}{
		"id":   menu.ID,
		"nama": menu.Name,
	})

	return menu, nil, nil
}

func (s *menuService) Update(id uuid.UUID, req *MenuRequest, photo *storage.Upload, userID *uuid.UUID) (*model.Menu, map[string]string, error) {
	menu, err := s.menuRepo.FindByID(id)
	if err != nil {
		return nil, nil, ErrMenuNotFound
	}

	fieldErrs, categoryID, err := s.validateRequest(req, photo)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	costPrice, _ := format.ParsePrice(req.HargaModal)
	salePrice, _ := format.ParsePrice(req.HargaJual)

	// Foto baru: file lama dihapus dulu, lalu path baru dicatat
	if photo != nil {
		if menu.PhotoPath != nil {
			if err := s.photos.Delete(*menu.PhotoPath); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
				return nil, nil, err
			}
		}
		path, err := s.photos.Save(photo)
		if err != nil {
			return nil, nil, err
		}
		menu.PhotoPath = &path
	}

	menu.Name = req.Nama
	menu.CategoryID = categoryID
	menu.CostPrice = costPrice
	menu.SalePrice = salePrice
	menu.Description = req.Deskripsi
	if err := s.menuRepo.Update(menu); err != nil {
		return nil, nil, err
	}

	s.notify(jobs.ActionUpdate, menu.Name)
	s.recordActivity(userID, "memperbarui data menu "+menu.Name)
	s.hub.Publish("menu_updated", map[string]interface{}{
		"id":   menu.ID,
		"nama": menu.Name,
	})

	return menu, nil, nil
}

func (s *menuService) Destroy(id uuid.UUID, userID *uuid.UUID) error {
	// Nama diambil sebelum dihapus untuk isi notifikasi dan audit
	menu, err := s.menuRepo.FindByID(id)
	if err != nil {
		return ErrMenuNotFound
	}

	if err := s.menuRepo.Delete(id); err != nil {
		return err
	}

	s.notify(jobs.ActionDestroy, menu.Name)
	s.recordActivity(userID, "menghapus menu "+menu.Name)
	s.hub.Publish("menu_deleted", map[string]interface{}{
		"id":   menu.ID,
		"nama": menu.Name,
	})

	return nil
}

// validateRequest runs field rules, cek keberadaan kategori, dan aturan
// foto. categoryID hanya berarti kalau tidak ada error.
func (s *menuService) validateRequest(req *MenuRequest, photo *storage.Upload) (map[string]string, uuid.UUID, error) {
	fieldErrs := validator.ValidateStructLocalized(req, menuMessages)
	if fieldErrs == nil {
		fieldErrs = map[string]string{}
	}

	var categoryID uuid.UUID
	if _, bad := fieldErrs["id_kategori"]; !bad {
		parsed, err := uuid.Parse(req.IDKategori)
		if err != nil {
			fieldErrs["id_kategori"] = msgMenuCategoryInvalid
		} else if _, err := s.categoryRepo.FindByID(parsed); err != nil {
			fieldErrs["id_kategori"] = msgMenuCategoryInvalid
		} else {
			categoryID = parsed
		}
	}

	if photo != nil {
		if msg := validatePhoto(photo); msg != "" {
			fieldErrs["foto"] = msg
		}
	}

	return fieldErrs, categoryID, nil
}

func validatePhoto(photo *storage.Upload) string {
	ext := strings.ToLower(filepath.Ext(photo.Filename))
	if ext == "" {
		return msgPhotoNotImage
	}
	if !allowedPhotoExts[ext] {
		return msgPhotoBadFormat
	}
	if photo.Size > maxPhotoSize {
		return msgPhotoTooLarge
	}
	return ""
}

func (s *menuService) notify(action string, names ...string) {
	if err := s.dispatcher.EntityMutation(action, jobs.EntityMenu, names...); err != nil {
		log.Printf("menu: gagal enqueue notifikasi %s: %v", action, err)
	}
}

func (s *menuService) recordActivity(userID *uuid.UUID, action string) {
	if err := s.activityRepo.Append(userID, action); err != nil {
		log.Printf("menu: gagal mencatat aktivitas: %v", err)
	}
}
