package models

import "time"

type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodLow   Mood = "low"
	MoodRough Mood = "rough"
)

// Moods lists the accepted mood tags in display order.
var Moods = []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodRough}

// DailyEntry is a single day's check-in: mood, what was worked on, and a free
// journal. At most one entry exists per owner per calendar date.
type DailyEntry struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Date        string    `json:"date"` // YYYY-MM-DD format
	Mood        Mood      `json:"mood"`
	WorkContent string    `json:"work_content"`
	Journal     string    `json:"journal,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
