package repository

import (
	"fittrack_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.Progress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) FindByIDAndUserID(id, userID uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&progress).Error
	return &progress, err
}

// FindByGoalID returns the goal's entries most recent first. The descending
// date order is what the dashboard's recent-activity view renders.
func (r *ProgressRepository) FindByGoalID(goalID, userID uint) ([]model.Progress, error) {
	entries := []model.Progress{}
	err := r.DB.Where("goal_id = ? AND user_id = ?", goalID, userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *ProgressRepository) FindRecentByUserID(userID uint, limit int) ([]model.Progress, error) {
	entries := []model.Progress{}
	err := r.DB.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *ProgressRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Progress{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *ProgressRepository) UpdateFields(id, userID uint, fields map[string]interface{}) error {
	tx := r.DB.Model(&model.Progress{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProgressRepository) Delete(id, userID uint) error {
	tx := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Progress{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
