// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"
	"testing"
)

func TestGuard_TryClaimSucceedsOnce(t *testing.T) {
	g := NewGuard()

	if g.Claimed() {
		t.Fatal("fresh guard should not be claimed")
	}
	if !g.TryClaim() {
		t.Fatal("first TryClaim should succeed")
	}
	if g.TryClaim() {
		t.Error("second TryClaim should fail")
	}
	if g.TryClaim() {
		t.Error("third TryClaim should fail")
	}
	if !g.Claimed() {
		t.Error("guard should report claimed")
	}
	if g.ClaimedAt().IsZero() {
		t.Error("ClaimedAt should be set after a successful claim")
	}
}

func TestGuard_AtMostOnceUnderConcurrency(t *testing.T) {
	g := NewGuard()

	const goroutines = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryClaim() {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("TryClaim won %d times, want exactly 1", wins)
	}
}

func TestGuard_SessionIdentity(t *testing.T) {
	a := NewGuard()
	b := NewGuard()

	if a.SessionID() == "" {
		t.Error("SessionID should not be empty")
	}
	if a.SessionID() == b.SessionID() {
		t.Error("two sessions should have distinct IDs")
	}
	if a.StartTime().IsZero() {
		t.Error("StartTime should be set")
	}
}
