package domain

import "time"

// MoodLevel captures the self-reported mood on a journal entry.
type MoodLevel string

const (
	MoodVerySad   MoodLevel = "VERY_SAD"
	MoodSad       MoodLevel = "SAD"
	MoodNeutral   MoodLevel = "NEUTRAL"
	MoodHappy     MoodLevel = "HAPPY"
	MoodVeryHappy MoodLevel = "VERY_HAPPY"
)

// Journal is a private diary entry owned by one user.
type Journal struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Mood      MoodLevel
	Tags      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
