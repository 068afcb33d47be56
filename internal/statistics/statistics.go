// Package statistics accumulates one strategy's results across a batch of
// simulated matches.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MaxSeats bounds the per-seat analytics arrays.
const MaxSeats = 7

// MatchResult is the outcome of one simulated match for the tracked player.
type MatchResult struct {
	Score  float64 // final victory points
	Margin float64 // points clear of the best opponent; negative when behind
	Seed   int64   // match seed, for replay
	Seat   int     // seating position the setup shuffle dealt, 0-based
	Won    bool    // finished first in the ranking
}

// SeatStats tracks results for one seating position.
type SeatStats struct {
	Matches int
	Sum     float64
	Sum2    float64
}

// Statistics aggregates match results for one strategy.
type Statistics struct {
	Matches int
	Sum     float64
	Sum2    float64   // sum of squares for variance calculation
	Values  []float64 // retained for median and percentile calculation

	Wins      int
	SumMargin float64

	// Seat analytics, indexed by seating position. A fair engine shows no
	// seat with a significant edge; this is how you check.
	SeatResults [MaxSeats]SeatStats
}

// Mean returns the arithmetic mean score per match.
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.Sum / float64(s.Matches)
}

// Variance returns the sample variance of the scores.
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
}

// StdDev returns the sample standard deviation of the scores.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of matches won.
func (s *Statistics) WinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Matches)
}

// MeanMargin returns the mean points clear of the best opponent.
func (s *Statistics) MeanMargin() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumMargin / float64(s.Matches)
}

// Add incorporates one match result.
func (s *Statistics) Add(result MatchResult) {
	v := result.Score
	s.Matches++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)

	if result.Won {
		s.Wins++
	}
	s.SumMargin += result.Margin

	if result.Seat >= 0 && result.Seat < MaxSeats {
		ss := &s.SeatResults[result.Seat]
		ss.Matches++
		ss.Sum += v
		ss.Sum2 += v * v
	}
}

// Median returns the median score.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the score at the given percentile (0.0 to 1.0),
// linearly interpolated between neighbors.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the mean score from one seating position.
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 0 || seat >= MaxSeats {
		return 0
	}
	ss := s.SeatResults[seat]
	if ss.Matches == 0 {
		return 0
	}
	return ss.Sum / float64(ss.Matches)
}

// Validate checks the accumulated data for internal consistency.
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid match count: %d", s.Matches)
	}
	if len(s.Values) != s.Matches {
		return fmt.Errorf("values length (%d) does not match match count (%d)",
			len(s.Values), s.Matches)
	}
	if s.Wins > s.Matches {
		return fmt.Errorf("wins (%d) exceed matches (%d)", s.Wins, s.Matches)
	}
	seatTotal := 0
	for i := range s.SeatResults {
		seatTotal += s.SeatResults[i].Matches
	}
	if seatTotal != s.Matches {
		return fmt.Errorf("seat totals (%d) do not match match count (%d)",
			seatTotal, s.Matches)
	}
	return nil
}
