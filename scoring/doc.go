// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring validates a claimed score against the time a game lasted.

# Expected Score

A player scores roughly one point every two seconds:

	serverScore = elapsed/2 - 0.2

# Accepted Range

	lower = floor(serverScore * 0.97)
	upper = serverScore * 1.03

A claim is accepted when lower <= score <= upper:

	elapsed := scoring.ElapsedSeconds(startedAt, time.Now())
	if !scoring.IsAccepted(score, elapsed) {
		// cheater
	}

Games shorter than 0.4 seconds produce a negative range, so every
reasonable score is rejected.

# Precision

ElapsedSeconds is the only place wall-clock durations become seconds.
Durations are truncated to whole milliseconds before division.
*/
package scoring
