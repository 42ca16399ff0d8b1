package pkg

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionID - returns a unique identifier for a player session.
func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateGameID - returns a short shareable game code.
func GenerateGameID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return strings.SplitN(id.String(), "-", 2)[0], nil
}
