package store

import (
	"context"

	"agtechsummit/internal/domain"
)

// StatsRepo computes dashboard figures from the live state.
type StatsRepo struct{ s *Store }

var _ domain.StatsReader = (*StatsRepo)(nil)

func (s *Store) Stats() *StatsRepo { return &StatsRepo{s: s} }

// GetDashboardStats counts every collection. TotalRevenue is a plain sum of amounts in
// mixed currencies; RevenueByCurrency keeps the per-currency split.
func (r *StatsRepo) GetDashboardStats(_ context.Context) domain.DashboardStats {
	var out domain.DashboardStats
	r.s.read(func(st *State) {
		out = domain.DashboardStats{
			PaperSubmissions:       len(st.PaperSubmissions),
			Enquiries:              len(st.Enquiries),
			Speakers:               len(st.Speakers),
			LeadershipApplications: len(st.LeadershipApplications),
			CommitteeMembers:       len(st.CommitteeMembers),
			Sessions:               len(st.Sessions),
			Registrations:          len(st.Registrations),
			ExitFeedback:           len(st.ExitFeedback),
			RevenueByCurrency:      map[string]int{},
		}
		for _, p := range st.PaperSubmissions {
			if p.Status == domain.PaperStatusPending {
				out.PendingSubmissions++
			}
		}
		for _, a := range st.LeadershipApplications {
			if a.Track == domain.TrackSpeaker {
				out.SpeakerApplications++
			}
		}
		for _, reg := range st.Registrations {
			out.TotalRevenue += reg.Amount
			out.RevenueByCurrency[reg.Currency] += reg.Amount
		}
	})
	return out
}
