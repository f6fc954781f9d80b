package task

import (
	"time"

	"github.com/example/daytask/internal/ids"
)

// GenerateID creates a unique 8-character alphanumeric ID from the task
// text and creation timestamp.
func GenerateID(text string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(text, timestamp, ids.DefaultLength)
}
