package letters

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_allocator.go github.com/Yunus705/alpharush/internal/letters Allocator

// Alphabet is the pool of letters a room draws from, one per round.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrExhausted is returned once every letter of the alphabet has been drawn
var ErrExhausted = errors.New("letter pool exhausted")

// Allocator selects round letters that have not been used yet
type Allocator interface {
	// Next returns a random letter not present in used. It must not
	// mutate used; the caller appends the result to the room's history.
	Next(used []string) (string, error)
}

// Config for the random allocator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomAllocator implements Allocator with a uniform draw over the
// remaining letters
type RandomAllocator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random letter allocator
func New(cfg *Config) *RandomAllocator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &RandomAllocator{
		random: rand.New(source),
	}
}

// Next returns a uniformly random unused letter.
func (a *RandomAllocator) Next(used []string) (string, error) {
	taken := make(map[string]bool, len(used))
	for _, letter := range used {
		taken[strings.ToUpper(letter)] = true
	}

	remaining := make([]string, 0, len(Alphabet))
	for _, r := range Alphabet {
		letter := string(r)
		if !taken[letter] {
			remaining = append(remaining, letter)
		}
	}

	if len(remaining) == 0 {
		return "", ErrExhausted
	}

	// rand.Rand is not safe for concurrent use and rooms draw independently
	a.mu.Lock()
	defer a.mu.Unlock()

	return remaining[a.random.Intn(len(remaining))], nil
}
