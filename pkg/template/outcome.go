package template

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the reply produced by a successful non-empty echo.
// Immutable once constructed; accessors return snapshots.
type Outcome struct {
	id             uuid.UUID
	text           string
	length         uint32
	timestamp      uint64
	diagnosticHash string
}

func newOutcome(text string) *Outcome {
	now := time.Now().Unix()
	if now < 0 {
		now = 0 // clock before the epoch, clamp rather than wrap
	}
	return &Outcome{
		id:        uuid.New(),
		text:      text,
		length:    uint32(len(text)),
		timestamp: uint64(now),
	}
}

func (o Outcome) Text() string {
	return o.text
}

// Length is the UTF-8 byte length of the text, not the rune count.
func (o Outcome) Length() uint32 {
	return o.length
}

func (o Outcome) Timestamp() uint64 {
	return o.timestamp
}

// DiagnosticHash returns the attached diagnostic fingerprint, or the
// empty string when none was recorded. Successful echoes never record
// one.
func (o Outcome) DiagnosticHash() string {
	return o.diagnosticHash
}

func (o Outcome) Id() uuid.UUID {
	return o.id
}
