// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"time"
)

// ErrorRange is the fractional tolerance around the expected score
const ErrorRange = 0.03

// ServerScore is the score a player should have after elapsedSeconds of play
func ServerScore(elapsedSeconds float64) float64 {
	return elapsedSeconds/2 - 0.2
}

// ExpectedRange returns the accepted score window for a game of the given length.
// The lower bound is floored and the upper bound is not.
func ExpectedRange(elapsedSeconds float64) (lower, upper float64) {
	serverScore := ServerScore(elapsedSeconds)
	lower = math.Floor(serverScore * (1 - ErrorRange))
	upper = serverScore * (1 + ErrorRange)
	return lower, upper
}

// IsAccepted reports whether score lies in the closed expected range
func IsAccepted(score, elapsedSeconds float64) bool {
	lower, upper := ExpectedRange(elapsedSeconds)
	return score >= lower && score <= upper
}

// ElapsedSeconds converts the time between start and end to seconds
// at millisecond precision. Negative durations are returned as-is.
func ElapsedSeconds(start, end time.Time) float64 {
	return float64(end.Sub(start).Milliseconds()) / 1000
}
