// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines wire, domain, and result types for the game server.

# Wire Types

Every socket frame is an Envelope:

	{"event": "gameOver", "data": {"score": 12}}

Payloads carried in Data:

  - Gotchi: name, tokenId (setGotchiData)
  - GameOverPayload: score (gameOver)

gameStarted and handleDisconnect carry no payload.

# Domain Types

  - HighScore: tokenId, name, score. One record per token ID.

# Results

Score submissions resolve to a Result:

	res := models.Accepted()
	res := models.Rejected(models.ReasonNotLarger, nil)

A rejection carries a Reason and, when the backend failed, the Cause.
Rejections are normal outcomes and are only logged server side.

# Constants

Event names:

	EventSetGotchiData    = "setGotchiData"
	EventGameStarted      = "gameStarted"
	EventGameOver         = "gameOver"
	EventHandleDisconnect = "handleDisconnect"
*/
package models
