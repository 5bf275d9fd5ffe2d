package dto

import (
	"time"

	"studymate/internal/dashboard"
	"studymate/internal/navigation"
)

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuResponse struct {
	Open   bool   `json:"open"`
	Active string `json:"active,omitempty"`
}

// SelectRouteRequest is the body of POST /menu/select.
type SelectRouteRequest struct {
	Href string `json:"href" validate:"required,startswith=/"`
}

type NavigationResponse struct {
	Routes   []navigation.Route   `json:"routes"`
	Features []navigation.Feature `json:"features"`
}

type GoalResponse struct {
	Label   string `json:"label"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Percent int    `json:"percent"`
}

type DashboardResponse struct {
	Stats          dashboard.Stats         `json:"stats"`
	Cards          []dashboard.StatCard    `json:"cards"`
	WeeklyActivity []dashboard.DayActivity `json:"weekly_activity"`
	ActivityScale  int                     `json:"activity_scale"`
	Goals          []GoalResponse          `json:"goals"`
	Achievements   []dashboard.Achievement `json:"achievements"`
	RecentActivity []dashboard.Activity    `json:"recent_activity"`
}

func NewDashboardResponse(s dashboard.Snapshot) DashboardResponse {
	goals := make([]GoalResponse, 0, len(s.Goals))
	for _, g := range s.Goals {
		goals = append(goals, GoalResponse{Label: g.Label, Current: g.Current, Target: g.Target, Percent: g.Percent()})
	}
	return DashboardResponse{
		Stats:          s.Stats,
		Cards:          s.Cards,
		WeeklyActivity: s.WeeklyActivity,
		ActivityScale:  dashboard.ActivityScale,
		Goals:          goals,
		Achievements:   s.Achievements,
		RecentActivity: s.RecentActivity,
	}
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Cache    string `json:"cache"`
	Sessions int    `json:"sessions"`
}
