package scoring

import (
	"strings"

	"github.com/Yunus705/alpharush/internal/models"
)

const (
	// PointsUnique is awarded when exactly one player produced an answer
	PointsUnique = 10

	// PointsShared is awarded to each player when two or more produced the
	// identical normalized answer
	PointsShared = 5

	// DefaultMinAnswerLength is the minimum accepted answer length
	DefaultMinAnswerLength = 3
)

// Config holds configuration for the scorer
type Config struct {
	// Minimum answer length after trimming; defaults to 3
	MinAnswerLength int
}

// Scorer computes per-player round points from an answer set
type Scorer struct {
	minAnswerLength int
}

// New creates a new scorer
func New(cfg *Config) *Scorer {
	minLength := DefaultMinAnswerLength
	if cfg != nil && cfg.MinAnswerLength > 0 {
		minLength = cfg.MinAnswerLength
	}

	return &Scorer{
		minAnswerLength: minLength,
	}
}

// Result holds the outcome of scoring one round
type Result struct {
	// Points maps player ID to the player's round total
	Points map[string]int

	// Breakdown maps player ID to per-category points
	Breakdown map[string]map[models.Category]int
}

// PointsFor returns the points a player earned for one category.
func (r *Result) PointsFor(playerID string, category models.Category) int {
	breakdown, ok := r.Breakdown[playerID]
	if !ok {
		return 0
	}
	return breakdown[category]
}

// ScoreRound computes every player's points for one round. Invalid and
// host-invalidated answers earn nothing and are excluded from duplicate
// grouping, so invalidating one half of a duplicated pair promotes the
// remaining player to the unique bonus on recompute.
func (s *Scorer) ScoreRound(round *models.RoundAnswers) *Result {
	result := &Result{
		Points:    make(map[string]int, len(round.Submissions)),
		Breakdown: make(map[string]map[models.Category]int, len(round.Submissions)),
	}

	for playerID := range round.Submissions {
		result.Points[playerID] = 0
		result.Breakdown[playerID] = make(map[models.Category]int, 4)
	}

	for _, category := range models.Categories() {
		// Group valid answers by normalized text across all players
		groups := make(map[string][]string)
		for playerID, sub := range round.Submissions {
			if sub.Invalidated[category] {
				continue
			}
			answer := sub.Answers[category]
			if !s.ValidAnswer(answer, round.Letter) {
				continue
			}
			normalized := Normalize(answer)
			groups[normalized] = append(groups[normalized], playerID)
		}

		for _, playerIDs := range groups {
			points := PointsUnique
			if len(playerIDs) > 1 {
				points = PointsShared
			}
			for _, playerID := range playerIDs {
				result.Points[playerID] += points
				result.Breakdown[playerID][category] = points
			}
		}
	}

	return result
}

// ValidAnswer reports whether an answer scores at all for the given round
// letter: trimmed, long enough, purely alphabetic, not one character
// repeated throughout, and starting with the round's letter.
func (s *Scorer) ValidAnswer(answer, letter string) bool {
	answer = strings.TrimSpace(answer)
	if len(answer) < s.minAnswerLength {
		return false
	}

	for _, r := range answer {
		if !isAlpha(r) {
			return false
		}
	}

	if allSameRune(strings.ToLower(answer)) {
		return false
	}

	if letter == "" {
		return false
	}

	return strings.EqualFold(answer[:1], letter[:1])
}

// Normalize maps an answer to its grouping key.
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func allSameRune(s string) bool {
	if s == "" {
		return true
	}
	first := rune(s[0])
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}
