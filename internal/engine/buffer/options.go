package buffer

// DefaultCapacity is the number of lines a buffer holds when no capacity is configured.
const DefaultCapacity = 25

// Option is a functional option for configuring a LineBuffer.
type Option func(*LineBuffer)

// WithCapacity sets the maximum number of lines.
// Non-positive values keep the default.
func WithCapacity(capacity int) Option {
	return func(b *LineBuffer) {
		if capacity > 0 {
			b.capacity = capacity
		}
	}
}

// WithLines sets the initial content. Lines beyond capacity are dropped,
// as they would be by Load.
func WithLines(lines []string) Option {
	return func(b *LineBuffer) {
		b.initial = lines
	}
}
