// Package dashboard serves the static progress overview.
package dashboard

type Stats struct {
	XP                     int `json:"xp"`
	Streak                 int `json:"streak"`
	NotesProcessed         int `json:"notes_processed"`
	FlashcardsGenerated    int `json:"flashcards_generated"`
	StudySessionsCompleted int `json:"study_sessions_completed"`
}

type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note,omitempty"`
}

type DayActivity struct {
	Day   string `json:"day"`
	Value int    `json:"value"`
}

type Goal struct {
	Label   string `json:"label"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
}

// Percent is the rounded progress towards the target.
func (g Goal) Percent() int {
	if g.Target <= 0 {
		return 0
	}
	return (g.Current*100 + g.Target/2) / g.Target
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Activity struct {
	Title string `json:"title"`
	When  string `json:"when"`
}

type Snapshot struct {
	Stats          Stats         `json:"stats"`
	Cards          []StatCard    `json:"cards"`
	WeeklyActivity []DayActivity `json:"weekly_activity"`
	Goals          []Goal        `json:"goals"`
	Achievements   []Achievement `json:"achievements"`
	RecentActivity []Activity    `json:"recent_activity"`
}

// ActivityScale is the value that fills a weekly activity bar.
const ActivityScale = 10

// Get returns the mock dashboard. Every call builds fresh slices.
func Get() Snapshot {
	stats := Stats{
		XP:                     2450,
		Streak:                 7,
		NotesProcessed:         23,
		FlashcardsGenerated:    156,
		StudySessionsCompleted: 34,
	}
	return Snapshot{
		Stats: stats,
		Cards: []StatCard{
			{Label: "Total XP", Value: "2,450", Note: "+180 this week"},
			{Label: "Study Streak", Value: "7 days", Note: "Keep it up! 🔥"},
			{Label: "Notes Processed", Value: "23", Note: "+3 this week"},
			{Label: "Flashcards", Value: "156", Note: "Generated this month"},
		},
		WeeklyActivity: []DayActivity{
			{Day: "Mon", Value: 3},
			{Day: "Tue", Value: 7},
			{Day: "Wed", Value: 5},
			{Day: "Thu", Value: 9},
			{Day: "Fri", Value: 6},
			{Day: "Sat", Value: 4},
			{Day: "Sun", Value: 8},
		},
		Goals: []Goal{
			{Label: "Study Sessions", Current: 5, Target: 7},
			{Label: "Flashcards Reviewed", Current: 45, Target: 50},
			{Label: "XP Earned", Current: 420, Target: 500},
		},
		Achievements: []Achievement{
			{Title: "Week Warrior", Description: "7-day study streak"},
			{Title: "Flash Master", Description: "100+ flashcards created"},
			{Title: "Note Ninja", Description: "20+ documents processed"},
		},
		RecentActivity: []Activity{
			{Title: "Physics Notes Ch.5", When: "2 hours ago"},
			{Title: "Chemistry Flashcards", When: "4 hours ago"},
			{Title: "AI Tutor Session", When: "Yesterday"},
		},
	}
}
