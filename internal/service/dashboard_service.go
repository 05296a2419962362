package service

import (
	"fittrack_backend/internal/model"
)

// recentActivityLimit bounds the dashboard's recent-activity list.
const recentActivityLimit = 10

type DashboardService struct {
	GoalRepo     GoalStore
	ProgressRepo ProgressStore
}

func NewDashboardService(goalRepo GoalStore, progressRepo ProgressStore) *DashboardService {
	return &DashboardService{
		GoalRepo:     goalRepo,
		ProgressRepo: progressRepo,
	}
}

// GetStats computes the dashboard card numbers from the raw rows; nothing is
// cached or persisted.
func (s *DashboardService) GetStats(userID uint) (*model.DashboardStats, error) {
	totalGoals, err := s.GoalRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	totalProgress, err := s.ProgressRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.ProgressRepo.FindRecentByUserID(userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		TotalGoals:     totalGoals,
		TotalProgress:  totalProgress,
		RecentActivity: recent,
	}, nil
}
