package models

import (
	"time"
)

// Category identifies one of the four answer columns of a round
type Category string

const (
	// CategoryName is the "Name" column
	CategoryName Category = "name"

	// CategoryCity is the "City" column
	CategoryCity Category = "city"

	// CategoryThing is the "Thing" column
	CategoryThing Category = "thing"

	// CategoryAnimal is the "Animal" column
	CategoryAnimal Category = "animal"
)

// Categories returns the four answer categories in display order.
func Categories() []Category {
	return []Category{CategoryName, CategoryCity, CategoryThing, CategoryAnimal}
}

// Submission holds one player's answers for one round
type Submission struct {
	// PlayerID is the identifier of the player who produced the answers
	PlayerID string

	// Answers maps each category to the value last known for the player,
	// whether entered as a draft or an explicit submit
	Answers map[Category]string

	// SubmittedAt is when the player explicitly submitted; nil while the
	// entry only holds drafts
	SubmittedAt *time.Time

	// Invalidated flags categories the host has marked as non-scoring
	Invalidated map[Category]bool
}

// NewSubmission creates an empty submission for a player.
func NewSubmission(playerID string) *Submission {
	return &Submission{
		PlayerID:    playerID,
		Answers:     make(map[Category]string),
		Invalidated: make(map[Category]bool),
	}
}

// Merge copies the given category values into the submission, leaving
// categories absent from the update untouched.
func (s *Submission) Merge(values map[Category]string) {
	for category, value := range values {
		s.Answers[category] = value
	}
}

// HasSubmitted reports whether the player explicitly submitted this round.
// Drafts alone never count.
func (s *Submission) HasSubmitted() bool {
	return s.SubmittedAt != nil
}
