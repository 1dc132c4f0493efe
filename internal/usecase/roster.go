package usecase

import (
	"context"
	"fmt"
)

// RosterResolver turns a participant id into a human-readable display name
// via the chat gateway. Resolution is best-effort; callers must tolerate
// failure.
type RosterResolver interface {
	DisplayName(ctx context.Context, participantID string) (string, error)
}

// displayNameOrFallback resolves a display name, falling back to a mention
// label when the participant is unreachable.
func displayNameOrFallback(ctx context.Context, resolver RosterResolver, participantID string) string {
	if resolver == nil {
		return fallbackLabel(participantID)
	}

	name, err := resolver.DisplayName(ctx, participantID)
	if err != nil || name == "" {
		return fallbackLabel(participantID)
	}

	return name
}

func fallbackLabel(participantID string) string {
	return fmt.Sprintf("<@%s>", participantID)
}
