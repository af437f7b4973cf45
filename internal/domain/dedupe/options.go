package dedupe

const defaultCapacity = 256

type options struct {
	capacity int
}

// Option applies a configuration option to the in-memory deduper.
type Option func(*options)

// WithCapacity pre-sizes the seen set. Non-positive values keep the default.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}
