package domain

import "time"

// MotivationType enumerates kinds of motivational content.
type MotivationType string

const (
	MotivationQuote    MotivationType = "QUOTE"
	MotivationTip      MotivationType = "TIP"
	MotivationArticle  MotivationType = "ARTICLE"
	MotivationExercise MotivationType = "EXERCISE"
)

// Motivation is a piece of motivational content shown to users.
type Motivation struct {
	ID        string
	Title     string
	Content   string
	Type      MotivationType
	Author    string
	Category  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
