package repository

import (
	"errors"

	"go-resto-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindAllOldestFirst() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	FindByName(name string, excludeID *uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	FindNamesByIDs(ids []uuid.UUID) ([]string, error)
	CountByIDs(ids []uuid.UUID) (int64, error)
	DeleteByIDs(ids []uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("created_at desc").Find(&categories).Error
	return categories, err
}

// FindAllOldestFirst dipakai halaman menu: urutan dropdown kategori
// mengikuti urutan pembuatan.
func (r *categoryRepo) FindAllOldestFirst() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("created_at asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName looks up a category by exact name, optionally ignoring one id
// (untuk cek unik saat update, tidak menabrak dirinya sendiri).
func (r *categoryRepo) FindByName(name string, excludeID *uuid.UUID) (*model.Category, error) {
	q := r.db.Where("name = ?", name)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var category model.Category
	if err := q.First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) FindNamesByIDs(ids []uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.Model(&model.Category{}).Where("id IN ?", ids).Pluck("name", &names).Error
	return names, err
}

func (r *categoryRepo) CountByIDs(ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Category{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// DeleteByIDs menghapus semua baris terpilih dalam satu operasi; FK
// cascade di tabel menus ikut membersihkan menu di bawahnya.
func (r *categoryRepo) DeleteByIDs(ids []uuid.UUID) error {
	return r.db.Delete(&model.Category{}, "id IN ?", ids).Error
}
