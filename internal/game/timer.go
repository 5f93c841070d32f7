package game

import (
	"context"
	"log"
	"time"

	"github.com/telesketch/telesketch-backend/internal"
)

// =============================================================================
// TIMER MANAGEMENT
// =============================================================================
//
// One logical deadline per room. Arming stamps RoundStartTime and schedules a
// single expiry callback; cancellation is a best-effort "prevent future
// firing" — when a callback is already in flight, the phase guard inside each
// end*Phase transition is what prevents a duplicate transition.

// armPhaseTimerLocked schedules the deadline for the room's current phase.
// Caller holds room.Mu.
func (g *Registry) armPhaseTimerLocked(room *internal.Room, duration time.Duration) {
	g.cancelPhaseTimerLocked(room)

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	room.RoundStartTime = time.Now()
	room.Timer = &internal.GameTimer{
		StartTime: room.RoundStartTime,
		Duration:  duration,
		Context:   ctx,
		Cancel:    cancel,
	}

	go func() {
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			g.handlePhaseDeadline(room, ctx)
		}
	}()
}

// handlePhaseDeadline runs when a deadline expires naturally. It re-validates
// under the room lock that this arming is still the live one, then ends
// whatever timed phase the room is in and notifies the observer.
func (g *Registry) handlePhaseDeadline(room *internal.Room, ctx context.Context) {
	room.Mu.Lock()
	if room.Timer == nil || room.Timer.Context != ctx {
		// A newer timer was armed while this callback was in flight.
		room.Mu.Unlock()
		return
	}

	var ended bool
	switch room.GameState {
	case internal.PhasePrompt:
		ended = g.endPromptPhaseLocked(room)
	case internal.PhaseDrawing:
		ended = g.endDrawingPhaseLocked(room)
	case internal.PhaseGuessing:
		ended = g.endGuessingPhaseLocked(room)
	}
	roomID := room.Id
	room.Mu.Unlock()

	if ended {
		log.Printf("[Timer] Phase deadline fired in room %s", roomID)
		g.observer.OnStateChange(roomID)
	}
}

// cancelPhaseTimerLocked stops the pending deadline. Safe to call when no
// timer is armed; canceling twice is a no-op. Caller holds room.Mu.
func (g *Registry) cancelPhaseTimerLocked(room *internal.Room) {
	if room.Timer == nil {
		return
	}
	if room.Timer.Cancel != nil {
		room.Timer.Cancel()
	}
	room.Timer = nil
}

// PauseGame freezes the current deadline, banking the remaining time.
// No-op if the room is absent or already paused.
func (g *Registry) PauseGame(roomID string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.IsPaused {
		return false
	}
	room.IsPaused = true

	if room.Timer != nil {
		g.cancelPhaseTimerLocked(room)

		elapsed := time.Since(room.RoundStartTime)
		duration := room.PhaseDuration(room.GameState)
		room.RemainingTime = max(0, duration-elapsed)
	}

	log.Printf("[Registry] Room %s paused. Remaining time: %.1fs",
		roomID, room.RemainingTime.Seconds())
	return true
}

// ResumeGame restarts a paused room. RoundStartTime is rewound so that the
// usual elapsed-since-start arithmetic immediately reflects the banked
// remaining time; an empty bank ends the phase on the spot.
func (g *Registry) ResumeGame(roomID string) bool {
	room := g.GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if !room.IsPaused {
		return false
	}
	room.IsPaused = false

	duration := room.PhaseDuration(room.GameState)
	if duration == 0 {
		// Not a timed phase; nothing to re-arm.
		return true
	}

	room.RoundStartTime = time.Now().Add(-(duration - room.RemainingTime))

	if room.RemainingTime > 0 {
		remaining := room.RemainingTime
		g.armPhaseTimerLocked(room, remaining)
		// armPhaseTimerLocked stamps RoundStartTime = now; restore the
		// synthetic start so reported time-remaining stays continuous.
		room.RoundStartTime = time.Now().Add(-(duration - remaining))
		room.Timer.StartTime = room.RoundStartTime
	} else {
		switch room.GameState {
		case internal.PhasePrompt:
			g.endPromptPhaseLocked(room)
		case internal.PhaseDrawing:
			g.endDrawingPhaseLocked(room)
		case internal.PhaseGuessing:
			g.endGuessingPhaseLocked(room)
		}
	}

	log.Printf("[Registry] Room %s resumed", roomID)
	return true
}
