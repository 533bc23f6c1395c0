package dedupe

// Option applies a configuration option to the in-memory deduper.
type Option func(*inMemoryDeduper)

// WithExempt lists keys that identify nobody in particular, such as the
// placeholder key of an anonymous contact. They are never merged.
func WithExempt(keys ...string) Option {
	return func(d *inMemoryDeduper) {
		for _, k := range keys {
			d.exempt[k] = struct{}{}
		}
	}
}
