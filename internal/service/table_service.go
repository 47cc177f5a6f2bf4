package service

import (
	"errors"
	"log"

	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/repository"
	"go-resto-backoffice/internal/ws"
	"go-resto-backoffice/pkg/validator"

	"github.com/google/uuid"
)

var ErrTableNotFound = errors.New("meja not found")

type TableService interface {
	List() ([]model.DiningTable, error)
	GetByID(id uuid.UUID) (*model.DiningTable, error)
	Update(id uuid.UUID, req *TableRequest, userID *uuid.UUID) (*model.DiningTable, map[string]string, error)
	BulkDelete(req *BulkDeleteTablesRequest, userID *uuid.UUID) (map[string]string, error)
}

type TableRequest struct {
	Nama string `json:"nama" validate:"required,max=50"`
}

type BulkDeleteTablesRequest struct {
	Mejas []uuid.UUID `json:"mejas" validate:"required,min=1,dive,uuid_required"`
}

var tableMessages = map[string]string{
	"nama.required": "Nama wajib diisi.",
	"nama.max":      "Nama tidak boleh lebih dari 50 karakter.",

	"mejas.required": "Silakan pilih setidaknya satu meja untuk dihapus.",
	"mejas.min":      "Silakan pilih setidaknya satu meja untuk dihapus.",

	"mejas.*.uuid_required": "Meja yang dipilih tidak valid.",
}

const msgTableInvalidSelection = "Meja yang dipilih tidak valid."

// Meja sengaja tanpa notifikasi email: hanya audit dan broadcast.
type tableService struct {
	tableRepo    repository.TableRepository
	activityRepo repository.ActivityLogRepository
	hub          *ws.Hub
}

func NewTableService(
	tableRepo repository.TableRepository,
	activityRepo repository.ActivityLogRepository,
	hub *ws.Hub,
) TableService {
	return &tableService{
		tableRepo:    tableRepo,
		activityRepo: activityRepo,
		hub:          hub,
	}
}

func (s *tableService) List() ([]model.DiningTable, error) {
	return s.tableRepo.FindAll()
}

func (s *tableService) GetByID(id uuid.UUID) (*model.DiningTable, error) {
	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		return nil, ErrTableNotFound
	}
	return table, nil
}

func (s *tableService) Update(id uuid.UUID, req *TableRequest, userID *uuid.UUID) (*model.DiningTable, map[string]string, error) {
	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		return nil, nil, ErrTableNotFound
	}

	if fieldErrs := validator.ValidateStructLocalized(req, tableMessages); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	table.Name = req.Nama
	if err := s.tableRepo.Update(table); err != nil {
		return nil, nil, err
	}

	s.recordActivity(userID, "memperbarui data meja "+table.Name)
	s.hub.Publish("table_updated", map[string]interface{}{
		"id":   table.ID,
		"nama": table.Name,
	})

	return table, nil, nil
}

func (s *tableService) BulkDelete(req *BulkDeleteTablesRequest, userID *uuid.UUID) (map[string]string, error) {
	if fieldErrs := validator.ValidateStructLocalized(req, tableMessages); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	// Id duplikat dari klien dihitung satu baris
	ids := uniqueIDs(req.Mejas)

	count, err := s.tableRepo.CountByIDs(ids)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return map[string]string{"mejas": msgTableInvalidSelection}, nil
	}

	if err := s.tableRepo.DeleteByIDs(ids); err != nil {
		return nil, err
	}

	s.recordActivity(userID, "menghapus meja")
	s.hub.Publish("table_deleted", map[string]interface{}{
		"ids": ids,
	})

	return nil, nil
}

func (s *tableService) recordActivity(userID *uuid.UUID, action string) {
	if err := s.activityRepo.Append(userID, action); err != nil {
		log.Printf("meja: gagal mencatat aktivitas: %v", err)
	}
}
