package header

// WithUserHeader overrides the header carrying the user identifier.
func WithUserHeader(val string) Option {
	return func(p *Provider) {
		p.userHeader = val
	}
}

// WithEmailHeader overrides the header carrying the user email.
func WithEmailHeader(val string) Option {
	return func(p *Provider) {
		p.emailHeader = val
	}
}
