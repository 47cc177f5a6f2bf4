package repository

import (
	"go-resto-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(menu *model.Menu) error
	FindAll() ([]model.Menu, error)
	FindByID(id uuid.UUID) (*model.Menu, error)
	Update(menu *model.Menu) error
	Delete(id uuid.UUID) error
}

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepo(db *gorm.DB) MenuRepository {
	return &menuRepo{db}
}

func (r *menuRepo) Create(menu *model.Menu) error {
	return r.db.Create(menu).Error
}

func (r *menuRepo) FindAll() ([]model.Menu, error) {
	var menus []model.Menu
	err := r.db.Preload("Category").Order("created_at desc").Find(&menus).Error
	return menus, err
}

func (r *menuRepo) FindByID(id uuid.UUID) (*model.Menu, error) {
	var menu model.Menu
	if err := r.db.Preload("Category").First(&menu, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepo) Update(menu *model.Menu) error {
	return r.db.Save(menu).Error
}

func (r *menuRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Menu{}, "id = ?", id).Error
}
