package model

// DashboardStats is the aggregate view rendered on the dashboard cards.
// Nothing here is persisted; it is computed per request from the raw rows.
type DashboardStats struct {
	TotalGoals     int64      `json:"totalGoals"`
	TotalProgress  int64      `json:"totalProgress"`
	RecentActivity []Progress `json:"recentActivity"`
}
