// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session tracks the state of every connected player.

# Lifecycle

	reg := session.NewRegistry()
	id := session.NewID()

	reg.Connect(id)                    // Connected
	reg.SetIdentity(id, gotchi)        // Identified
	reg.SetStart(id, time.Now())       // Playing (may be reset)
	reg.Remove(id)                     // gone

SetIdentity and SetStart on a removed session do nothing and return false,
since socket events can race a disconnect.

# Concurrency

Each connection is served on its own goroutine, so the Registry is guarded
by a mutex. Get returns a copy; callers never share session pointers.
*/
package session
