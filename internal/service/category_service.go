package service

import (
	"errors"
	"log"

	"go-resto-backoffice/internal/jobs"
	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/repository"
	"go-resto-backoffice/internal/ws"
	"go-resto-backoffice/pkg/validator"

	"github.com/google/uuid"
)

var ErrCategoryNotFound = errors.New("kategori not found")

type CategoryService interface {
	List() ([]model.Category, error)
	ListOldestFirst() ([]model.Category, error)
	GetByID(id uuid.UUID) (*model.Category, error)
	Create(req *CategoryRequest, userID *uuid.UUID) (*model.Category, map[string]string, error)
	Update(id uuid.UUID, req *CategoryRequest, userID *uuid.UUID) (*model.Category, map[string]string, error)
	BulkDelete(req *BulkDeleteCategoriesRequest, userID *uuid.UUID) (map[string]string, error)
}

type CategoryRequest struct {
	Nama      string `json:"nama" validate:"required,max=50"`
	Deskripsi string `json:"deskripsi"`
}

type BulkDeleteCategoriesRequest struct {
	Kategoris []uuid.UUID `json:"kategoris" validate:"required,min=1,dive,uuid_required"`
}

var categoryMessages = map[string]string{
	"nama.required": "Nama wajib diisi.",
	"nama.max":      "Nama tidak boleh lebih dari 50 karakter.",

	"deskripsi.string": "Deskripsi harus berupa teks.",

	"kategoris.required": "Silakan pilih setidaknya satu kategori untuk dihapus.",
	"kategoris.min":      "Silakan pilih setidaknya satu kategori untuk dihapus.",

	"kategoris.*.uuid_required": "Kategori yang dipilih tidak valid.",
}

const msgCategoryNameTaken = "Nama sudah terdaftar, silakan pilih nama lain."
const msgCategoryInvalidSelection = "Kategori yang dipilih tidak valid."

type categoryService struct {
	categoryRepo repository.CategoryRepository
	activityRepo repository.ActivityLogRepository
	dispatcher   jobs.Dispatcher
	hub          *ws.Hub
}

func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	activityRepo repository.ActivityLogRepository,
	dispatcher jobs.Dispatcher,
	hub *ws.Hub,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		activityRepo: activityRepo,
		dispatcher:   dispatcher,
		hub:          hub,
	}
}

func (s *categoryService) List() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) ListOldestFirst() ([]model.Category, error) {
	return s.categoryRepo.FindAllOldestFirst()
}

func (s *categoryService) GetByID(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) Create(req *CategoryRequest, userID *uuid.UUID) (*model.Category, map[string]string, error) {
	// 1. Validasi field
	fieldErrs := validator.ValidateStructLocalized(req, categoryMessages)

	// 2. Cek nama unik
	if _, taken := fieldErrs["nama"]; !taken {
		existing, err := s.categoryRepo.FindByName(req.Nama, nil)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil {
			if fieldErrs == nil {
				fieldErrs = map[string]string{}
			}
			fieldErrs["nama"] = msgCategoryNameTaken
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	// 3. Simpan
	category := &model.Category{
		Name:        req.Nama,
		Description: req.Deskripsi,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, nil, err
	}

	// 4. Side effects: notifikasi, audit, broadcast
	s.notify(jobs.ActionStore, category.Name)
	s.recordActivity(userID, "menambah kategori baru "+category.Name)
	s.hub.Publish("category_created", map[string]interface{}{
		"id":   category.ID,
		"nama": category.Name,
	})

	return category, nil, nil
}

func (s *categoryService) Update(id uuid.UUID, req *CategoryRequest, userID *uuid.UUID) (*model.Category, map[string]string, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, nil, ErrCategoryNotFound
	}

	fieldErrs := validator.ValidateStructLocalized(req, categoryMessages)

	// Cek unik, kecuali terhadap dirinya sendiri
	if _, taken := fieldErrs["nama"]; !taken {
		existing, err := s.categoryRepo.FindByName(req.Nama, &id)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil {
			if fieldErrs == nil {
				fieldErrs = map[string]string{}
			}
			fieldErrs["nama"] = msgCategoryNameTaken
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	category.Name = req.Nama
	category.Description = req.Deskripsi
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, nil, err
	}

	s.notify(jobs.ActionUpdate, category.Name)
	s.recordActivity(userID, "memperbarui data kategori "+category.Name)
	s.hub.Publish("category_updated", map[string]interface{}{
		"id":   category.ID,
		"nama": category.Name,
	})

	return category, nil, nil
}

func (s *categoryService) BulkDelete(req *BulkDeleteCategoriesRequest, userID *uuid.UUID) (map[string]string, error) {
	fieldErrs := validator.ValidateStructLocalized(req, categoryMessages)
	if len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	// Id duplikat dari klien dihitung satu baris
	ids := uniqueIDs(req.Kategoris)

	// Semua id terpilih harus ada; kalau tidak, tolak sebelum menghapus apa pun
	count, err := s.categoryRepo.CountByIDs(ids)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return map[string]string{"kategoris": msgCategoryInvalidSelection}, nil
	}

	// Nama diambil dulu untuk isi notifikasi
	names, err := s.categoryRepo.FindNamesByIDs(ids)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.DeleteByIDs(ids); err != nil {
		return nil, err
	}

	s.notify(jobs.ActionDestroy, names...)
	// Satu baris audit per operasi bulk, bukan per baris terhapus
	s.recordActivity(userID, "menghapus kategori")
	s.hub.Publish("category_deleted", map[string]interface{}{
		"ids":   ids,
		"namas": names,
	})

	return nil, nil
}

// uniqueIDs membuang id duplikat dari pilihan bulk, mempertahankan urutan
// kemunculan pertama.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *categoryService) notify(action string, names ...string) {
	if err := s.dispatcher.EntityMutation(action, jobs.EntityKategori, names...); err != nil {
		log.Printf("kategori: gagal enqueue notifikasi %s: %v", action, err)
	}
}

func (s *categoryService) recordActivity(userID *uuid.UUID, action string) {
	if err := s.activityRepo.Append(userID, action); err != nil {
		log.Printf("kategori: gagal mencatat aktivitas: %v", err)
	}
}
