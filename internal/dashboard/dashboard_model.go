// dashboard/model.go
package dashboard

// DashboardStats summarises a team's activity, optionally narrowed to a sprint.
// It is computed on request and never stored.
type DashboardStats struct {
	TotalInterns        int64    `json:"totalInterns"`
	SubmittedThisSprint int64    `json:"submittedThisSprint"`
	MissingSubmissions  int64    `json:"missingSubmissions"`
	TotalSubmissions    int64    `json:"totalSubmissions"`
	HighFivesGiven      int64    `json:"highFivesGiven"`
	TasksCompleted      int64    `json:"tasksCompleted"`
	AverageMood         *float64 `json:"averageMood"` // null when no submission carries a mood
}
