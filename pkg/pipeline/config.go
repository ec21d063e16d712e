package pipeline

type Option func(*Pipeline)

func WithPadding(padding int) Option {
	return func(p *Pipeline) {
		p.padding = padding
	}
}

// WithLanguage sets the default language hint passed to the detector
// and recognizer. A per-run language takes precedence.
func WithLanguage(language string) Option {
	return func(p *Pipeline) {
		p.language = language
	}
}

func WithConcurrency(limit int) Option {
	return func(p *Pipeline) {
		p.concurrency = limit
	}
}
