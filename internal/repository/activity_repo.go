package repository

import (
	"go-resto-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	Append(userID *uuid.UUID, action string) error
	CountByAction(action string) (int64, error)
}

type activityLogRepo struct {
	db *gorm.DB
}

func NewActivityLogRepo(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db}
}

// Append writes one audit row. Baris tidak pernah di-update setelahnya.
func (r *activityLogRepo) Append(userID *uuid.UUID, action string) error {
	return r.db.Create(&model.ActivityLog{
		UserID: userID,
		Action: action,
	}).Error
}

func (r *activityLogRepo) CountByAction(action string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ActivityLog{}).Where("action = ?", action).Count(&count).Error
	return count, err
}
