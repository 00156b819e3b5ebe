package models

// DashboardView is a consistent copy of one user's dashboard state.
type DashboardView struct {
	Username string         `json:"username"`
	Load     LoadStatus     `json:"load"`
	Error    string         `json:"error,omitempty"`
	Filters  FilterCriteria `json:"filters"`
	Projects []Project      `json:"projects"`
	Total    int            `json:"total"`
}
