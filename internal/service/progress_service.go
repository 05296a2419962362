package service

import (
	"errors"
	"fittrack_backend/internal/model"
	"fittrack_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// ProgressStore is the slice of ProgressRepository the services need.
type ProgressStore interface {
	Create(progress *model.Progress) error
	FindByIDAndUserID(id, userID uint) (*model.Progress, error)
	FindByGoalID(goalID, userID uint) ([]model.Progress, error)
	FindRecentByUserID(userID uint, limit int) ([]model.Progress, error)
	CountByUserID(userID uint) (int64, error)
	UpdateFields(id, userID uint, fields map[string]interface{}) error
	Delete(id, userID uint) error
}

type ProgressService struct {
	ProgressRepo ProgressStore
	GoalRepo     GoalStore
}

func NewProgressService(progressRepo ProgressStore, goalRepo GoalStore) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		GoalRepo:     goalRepo,
	}
}

type CreateProgressRequest struct {
	GoalID      uint   `json:"goalId"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type UpdateProgressRequest struct {
	Value       *string `json:"value"`
	Description *string `json:"description"`
}

// CreateProgress records a new entry against one of the caller's goals. The
// date is server time; client-supplied dates are ignored so entries cannot
// be backdated. The recorder is always the authenticated user.
func (s *ProgressService) CreateProgress(userID uint, req CreateProgressRequest) (*model.Progress, error) {
	if _, err := s.GoalRepo.FindByIDAndUserID(req.GoalID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidGoalID
		}
		return nil, err
	}

	if err := util.ValidateProgressValue(req.Value); err != nil {
		return nil, err
	}
	if err := util.ValidateProgressDescription(req.Description); err != nil {
		return nil, err
	}

	progress := &model.Progress{
		GoalID:      req.GoalID,
		UserID:      userID,
		Date:        time.Now(),
		Value:       req.Value,
		Description: req.Description,
	}

	if err := s.ProgressRepo.Create(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// GetProgressByGoal lists the goal's entries most recent first.
func (s *ProgressService) GetProgressByGoal(goalID, userID uint) ([]model.Progress, error) {
	if _, err := s.GoalRepo.FindByIDAndUserID(goalID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidGoalID
		}
		return nil, err
	}

	return s.ProgressRepo.FindByGoalID(goalID, userID)
}

// UpdateProgress changes value and/or description only; date and goal are
// immutable after creation.
func (s *ProgressService) UpdateProgress(id, userID uint, req UpdateProgressRequest) (*model.Progress, error) {
	fields := map[string]interface{}{}

	if req.Value != nil {
		if err := util.ValidateProgressValue(*req.Value); err != nil {
			return nil, err
		}
		fields["value"] = *req.Value
	}
	if req.Description != nil {
		if err := util.ValidateProgressDescription(*req.Description); err != nil {
			return nil, err
		}
		fields["description"] = *req.Description
	}

	if len(fields) > 0 {
		if err := s.ProgressRepo.UpdateFields(id, userID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrProgressNotFound
			}
			return nil, err
		}
	}

	progress, err := s.ProgressRepo.FindByIDAndUserID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProgressNotFound
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) DeleteProgress(id, userID uint) error {
	err := s.ProgressRepo.Delete(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrProgressNotFound
	}
	return err
}
