package util

import (
	"github.com/google/uuid"
)

// NewRunID returns a random identifier used to tag the log lines of one run
func NewRunID() string {
	return uuid.New().String()
}
