package pageprofile

// Default heuristic thresholds.
const (
	DefaultMaxPrefixWords       = 5
	DefaultMinContainerChildren = 3
	DefaultMinGroupBlocks       = 2
	DefaultTailElements         = 5
)

// Config holds the tunable thresholds of the extraction heuristics.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// MaxPrefixWords is the largest chunk size tried by the repeating-prefix cleaner.
	MaxPrefixWords int

	// MinContainerChildren is the number of same-tag children an element
	// needs before it is considered a repeating container.
	MinContainerChildren int

	// MinGroupBlocks is the number of accepted blocks a container must keep.
	MinGroupBlocks int

	// TailElements is the size of the "page tail" used as the last contact
	// region fallback.
	TailElements int
}

// DefaultConfig returns the thresholds the heuristics were tuned with.
func DefaultConfig() Config {
	return Config{
		MaxPrefixWords:       DefaultMaxPrefixWords,
		MinContainerChildren: DefaultMinContainerChildren,
		MinGroupBlocks:       DefaultMinGroupBlocks,
		TailElements:         DefaultTailElements,
	}
}

// Validate returns an error if any threshold is out of range.
func (c Config) Validate() error {
	if c.MaxPrefixWords < 1 {
		return Errorf(EINVALID, "max prefix words must be at least 1")
	}
	if c.MinContainerChildren < 2 {
		return Errorf(EINVALID, "min container children must be at least 2")
	}
	if c.MinGroupBlocks < 1 {
		return Errorf(EINVALID, "min group blocks must be at least 1")
	}
	if c.TailElements < 1 {
		return Errorf(EINVALID, "tail elements must be at least 1")
	}
	return nil
}
