package recommendation

import "math/rand"

// ScoreSource supplies the randomness behind match and confidence scores.
// It stands in for a real relevance model; tests inject a fixed sequence
// to make ranking assertions deterministic.
type ScoreSource interface {
	Intn(n int) int
	Float64() float64
}

// globalRand delegates to the package-level math/rand functions, which
// are safe for concurrent use across request goroutines.
type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }
