package template

// DefaultMaxInputSize bounds echo input when no explicit configuration
// is supplied: one million bytes.
const DefaultMaxInputSize uint64 = 1_000_000

// Config carries the per-operation limits of the echo pipeline.
// Immutable once constructed; a Config shared across goroutines needs
// no locking.
type Config struct {
	maxInputSize uint64
	validation   bool
}

func NewConfig(maxInputSize uint64, validation bool) Config {
	return Config{
		maxInputSize: maxInputSize,
		validation:   validation,
	}
}

// DefaultConfig mirrors the library defaults: DefaultMaxInputSize with
// content validation enabled.
func DefaultConfig() Config {
	return NewConfig(DefaultMaxInputSize, true)
}

func (c Config) MaxInputSize() uint64 {
	return c.maxInputSize
}

func (c Config) ValidationEnabled() bool {
	return c.validation
}
