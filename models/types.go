// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// Inbound socket event names
const (
	EventSetGotchiData    = "setGotchiData"
	EventGameStarted      = "gameStarted"
	EventGameOver         = "gameOver"
	EventHandleDisconnect = "handleDisconnect"
)

// Rejection reasons
const (
	ReasonBackendError   = "backend error"
	ReasonNotLarger      = "score not larger than original"
	ReasonOutOfRange     = "score outside accepted range"
	ReasonNotStarted     = "game not started"
	ReasonNoGotchi       = "gotchi data not set"
	ReasonUnknownSession = "unknown session"
)

// Wire types

// Envelope is a single text frame on the game socket
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Gotchi identifies the player's in-game avatar
type Gotchi struct {
	Name    string `json:"name"`
	TokenID string `json:"tokenId"`
}

// GameOverPayload carries the client's claimed score. Score is nil when
// the frame omits it.
type GameOverPayload struct {
	Score *float64 `json:"score"`
}

// Domain types

// HighScore is the best score stored for a token ID
type HighScore struct {
	TokenID string  `json:"tokenId"`
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
}

// Submission result

type Status int

const (
	StatusAccepted Status = iota
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	}
	return "unknown"
}

// Result is the outcome of a score submission.
// Cause is only set when the rejection came from a failing backend.
type Result struct {
	Status Status
	Reason string
	Cause  error
}

func Accepted() Result {
	return Result{Status: StatusAccepted}
}

func Rejected(reason string, cause error) Result {
	return Result{Status: StatusRejected, Reason: reason, Cause: cause}
}

func (r Result) OK() bool {
	return r.Status == StatusAccepted
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
