package storage

import (
	"fmt"
	"time"

	nanoid "github.com/jaevor/go-nanoid"
)

// IDGenerator produces unique record IDs.
type IDGenerator interface {
	NewID(prefix string) string
}

// idAlphabet keeps generated IDs lowercase-alphanumeric so they stay
// readable in slot payloads and shell output.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type nanoIDGenerator struct {
	now    func() time.Time
	suffix func() string
}

// NewIDGenerator returns an IDGenerator producing IDs of the form
// {prefix}_{unix-millis}_{8-char-nanoid}. The millisecond component keeps IDs
// roughly ordered by creation time; the nanoid suffix makes collisions
// astronomically unlikely even for repeated calls within one millisecond.
func NewIDGenerator() (IDGenerator, error) {
	suffix, err := nanoid.CustomASCII(idAlphabet, 8)
	if err != nil {
		return nil, fmt.Errorf("building id generator: %w", err)
	}
	return &nanoIDGenerator{now: time.Now, suffix: suffix}, nil
}

func (g *nanoIDGenerator) NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, g.now().UnixMilli(), g.suffix())
}
