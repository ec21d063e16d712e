package tesseract

type Option func(*Client)

func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}
