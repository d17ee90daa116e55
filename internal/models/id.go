package models

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID generates a prefixed record ID, e.g. "sale_6ba7b810…".
// The prefix makes ids self-describing in the audit log and the raw document.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
