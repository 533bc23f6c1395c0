package repository

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithMaxPerContact bounds the entries kept per contact. Older entries are
// evicted first. Zero keeps everything.
func WithMaxPerContact(n int) Option {
	return func(s *MemoryStore) {
		if n >= 0 {
			s.maxPerContact = n
		}
	}
}
