// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the best score of every gotchi.

# Submitting

	scores := store.NewScoreStore(backend)
	res := scores.Submit(ctx, tokenID, name, score)

Submit writes only when there is no record for the token or the new score
is strictly larger. The name is overwritten along with the score. Results:

  - Accepted
  - Rejected("score not larger than original")
  - Rejected("backend error") with the backend error as Cause

The read and the write are not atomic. Two sessions submitting for the same
token at the same time may both be accepted; the last write wins.

# Backends

  - SQLBackend: PostgreSQL (lib/pq) or SQLite (modernc) table created by
    db.CreateSchema, queries built with squirrel
  - RedisBackend: one JSON document per "<collection>:<tokenId>" key
  - MemoryBackend: in-process map, for development and tests
*/
package store
