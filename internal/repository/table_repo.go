package repository

import (
	"go-resto-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TableRepository interface {
	FindAll() ([]model.DiningTable, error)
	FindByID(id uuid.UUID) (*model.DiningTable, error)
	Update(table *model.DiningTable) error
	Create(table *model.DiningTable) error
	CountByIDs(ids []uuid.UUID) (int64, error)
	DeleteByIDs(ids []uuid.UUID) error
}

type tableRepo struct {
	db *gorm.DB
}

func NewTableRepo(db *gorm.DB) TableRepository {
	return &tableRepo{db}
}

func (r *tableRepo) FindAll() ([]model.DiningTable, error) {
	var tables []model.DiningTable
	err := r.db.Order("created_at desc").Find(&tables).Error
	return tables, err
}

func (r *tableRepo) FindByID(id uuid.UUID) (*model.DiningTable, error) {
	var table model.DiningTable
	if err := r.db.First(&table, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepo) Create(table *model.DiningTable) error {
	return r.db.Create(table).Error
}

func (r *tableRepo) Update(table *model.DiningTable) error {
	return r.db.Save(table).Error
}

func (r *tableRepo) CountByIDs(ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.DiningTable{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *tableRepo) DeleteByIDs(ids []uuid.UUID) error {
	return r.db.Delete(&model.DiningTable{}, "id IN ?", ids).Error
}
