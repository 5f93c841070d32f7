package utils

import (
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// RoomCodeLength is the length of the human-shareable room code.
const RoomCodeLength = 6

// GenerateRoomCode returns a short uppercase code cut from a fresh UUID.
// Uniqueness is the caller's problem (the registry retries on collision).
func GenerateRoomCode() string {
	return strings.ToUpper(uuid.NewString()[:RoomCodeLength])
}

// GenerateConnectionID returns an opaque id for a transport connection,
// used as the player identity for its lifetime.
func GenerateConnectionID() string {
	return uuid.NewString()
}
