package service

import (
	"errors"
	"fittrack_backend/internal/model"
	"fittrack_backend/internal/util"

	"gorm.io/gorm"
)

// GoalStore is the slice of GoalRepository the services need.
type GoalStore interface {
	Create(goal *model.Goal) error
	FindByIDAndUserID(id, userID uint) (*model.Goal, error)
	FindByUserID(userID uint) ([]model.Goal, error)
	CountByUserID(userID uint) (int64, error)
	UpdateFields(id, userID uint, fields map[string]interface{}) error
	Delete(id, userID uint) error
}

type GoalService struct {
	GoalRepo GoalStore
}

func NewGoalService(goalRepo GoalStore) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

type CreateGoalRequest struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	Metric string `json:"metric"`
}

// UpdateGoalRequest carries a partial update; nil fields are left untouched.
type UpdateGoalRequest struct {
	Name     *string `json:"name"`
	Target   *string `json:"target"`
	Metric   *string `json:"metric"`
	Progress *string `json:"progress"`
}

// CreateGoal validates name, target and metric (first failure wins) and
// persists the goal with its status initialized to "in progress".
func (s *GoalService) CreateGoal(userID uint, req CreateGoalRequest) (*model.Goal, error) {
	if err := util.ValidateGoalName(req.Name); err != nil {
		return nil, err
	}
	if err := util.ValidateGoalTarget(req.Target); err != nil {
		return nil, err
	}
	if err := util.ValidateGoalMetric(req.Metric); err != nil {
		return nil, err
	}

	goal := &model.Goal{
		UserID:   userID,
		Name:     req.Name,
		Target:   req.Target,
		Metric:   req.Metric,
		Progress: model.GoalProgressInitial,
	}

	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetUserGoals returns the user's goals ordered by ascending id. No goals is
// an empty slice, not an error.
func (s *GoalService) GetUserGoals(userID uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByUserID(userID)
}

// GetGoalByID is ownership-scoped: another user's goal is a not-found, never
// a leak.
func (s *GoalService) GetGoalByID(id, userID uint) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateGoal applies only the supplied fields, each validated the same way
// as at creation.
func (s *GoalService) UpdateGoal(id, userID uint, req UpdateGoalRequest) (*model.Goal, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		if err := util.ValidateGoalName(*req.Name); err != nil {
			return nil, err
		}
		fields["name"] = *req.Name
	}
	if req.Target != nil {
		if err := util.ValidateGoalTarget(*req.Target); err != nil {
			return nil, err
		}
		fields["target"] = *req.Target
	}
	if req.Metric != nil {
		if err := util.ValidateGoalMetric(*req.Metric); err != nil {
			return nil, err
		}
		fields["metric"] = *req.Metric
	}
	if req.Progress != nil {
		fields["progress"] = *req.Progress
	}

	if len(fields) > 0 {
		if err := s.GoalRepo.UpdateFields(id, userID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrGoalNotFound
			}
			return nil, err
		}
	}

	return s.GetGoalByID(id, userID)
}

// DeleteGoal removes the goal and its progress entries. A second delete of
// the same id reports not found.
func (s *GoalService) DeleteGoal(id, userID uint) error {
	err := s.GoalRepo.Delete(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrGoalNotFound
	}
	return err
}
