package domain

import "context"

// DashboardStats is the admin overview, computed on every read.
// swagger:model DashboardStats
type DashboardStats struct {
	PaperSubmissions       int `json:"paperSubmissions"`
	PendingSubmissions     int `json:"pendingSubmissions"`
	Enquiries              int `json:"enquiries"`
	Speakers               int `json:"speakers"`
	SpeakerApplications    int `json:"speakerApplications"`
	LeadershipApplications int `json:"leadershipApplications"`
	CommitteeMembers       int `json:"committeeMembers"`
	Sessions               int `json:"sessions"`
	Registrations          int `json:"registrations"`
	ExitFeedback           int `json:"exitFeedback"`
	// TotalRevenue adds registration amounts across currencies without conversion.
	TotalRevenue      int            `json:"totalRevenue"`
	RevenueByCurrency map[string]int `json:"revenueByCurrency"`
}

// StatsReader computes dashboard stats from the current state.
type StatsReader interface {
	GetDashboardStats(ctx context.Context) DashboardStats
}
