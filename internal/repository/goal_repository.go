package repository

import (
	"fittrack_backend/internal/model"

	"gorm.io/gorm"
)

// GoalRepository handles data access for goals. Ownership is folded into the
// queries; a goal that belongs to another user behaves as if it did not
// exist.
type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByIDAndUserID(id, userID uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	return &goal, err
}

func (r *GoalRepository) FindByUserID(userID uint) ([]model.Goal, error) {
	goals := []model.Goal{}
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Goal{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// UpdateFields applies a partial update. Returns gorm.ErrRecordNotFound when
// the goal does not exist or is owned by someone else.
func (r *GoalRepository) UpdateFields(id, userID uint, fields map[string]interface{}) error {
	tx := r.DB.Model(&model.Goal{}).
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

// Delete removes the goal and its progress entries. Returns
// gorm.ErrRecordNotFound when nothing was deleted, so a repeated delete
// surfaces as 404.
func (r *GoalRepository) Delete(id, userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Goal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("goal_id = ?", id).Delete(&model.Progress{}).Error
	})
}
