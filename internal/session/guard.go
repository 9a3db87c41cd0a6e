// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SUBMISSION GUARD
// =============================================================================

// Guard is the session-scoped submission guard. It replaces a global
// mutable flag with an explicit object passed to both the input handler and
// the sequencer trigger: TryClaim transitions unclaimed -> claimed exactly
// once, and the guard is never reset for the lifetime of the session.
type Guard struct {
	mu sync.Mutex

	sessionID string
	startTime time.Time

	claimed   bool
	claimedAt time.Time
}

// NewGuard creates an unclaimed guard for a fresh session.
func NewGuard() *Guard {
	return &Guard{
		sessionID: uuid.NewString(),
		startTime: time.Now(),
	}
}

// SessionID returns the session identity the guard belongs to.
func (g *Guard) SessionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessionID
}

// StartTime returns when the session started.
func (g *Guard) StartTime() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.startTime
}

// TryClaim attempts to claim the single submission slot. It returns true
// exactly once; every later call returns false. Callers that receive false
// must not log, animate, or invoke the sequencer.
func (g *Guard) TryClaim() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.claimed {
		return false
	}
	g.claimed = true
	g.claimedAt = time.Now()
	return true
}

// Claimed reports whether the submission slot has been taken.
func (g *Guard) Claimed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.claimed
}

// ClaimedAt returns when the slot was claimed (zero if unclaimed).
func (g *Guard) ClaimedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.claimedAt
}
