package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/lector/pkg/limiter"
	"github.com/adrianliechti/lector/pkg/otel"
	"github.com/adrianliechti/lector/pkg/recognizer"
	"github.com/adrianliechti/lector/pkg/recognizer/anthropic"
	"github.com/adrianliechti/lector/pkg/recognizer/bedrock"
	"github.com/adrianliechti/lector/pkg/recognizer/custom"
	"github.com/adrianliechti/lector/pkg/recognizer/google"
	"github.com/adrianliechti/lector/pkg/recognizer/ocrserver"
	"github.com/adrianliechti/lector/pkg/recognizer/openai"
	"github.com/adrianliechti/lector/pkg/recognizer/replicate"
	"github.com/adrianliechti/lector/pkg/recognizer/tesseract"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterRecognizer(id string, p recognizer.Provider) {
	if cfg.recognizers == nil {
		cfg.recognizers = make(map[string]recognizer.Provider)
	}

	if _, ok := cfg.recognizers[""]; !ok {
		cfg.recognizers[""] = p
	}

	cfg.recognizers[id] = p
}

func (cfg *Config) Recognizer(id string) (recognizer.Provider, error) {
	if cfg.recognizers != nil {
		if p, ok := cfg.recognizers[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("recognizer not found: " + id)
}

type recognizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	Device   string `yaml:"device"`

	Proxy *proxyConfig `yaml:"proxy"`

	Limit *int `yaml:"limit"`
}

type recognizerContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerRecognizers(f *configFile) error {
	var configs map[string]recognizerConfig

	if err := f.Recognizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Recognizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		recognizer, err := createRecognizer(config, context)

		if err != nil {
			return err
		}

		if _, ok := recognizer.(limiter.Recognizer); !ok {
			recognizer = limiter.NewRecognizer(context.Limiter, recognizer)
		}

		if _, ok := recognizer.(otel.Recognizer); !ok {
			recognizer = otel.NewRecognizer(config.Type, id, recognizer)
		}

		cfg.RegisterRecognizer(id, recognizer)
	}

	return nil
}

func createRecognizer(cfg recognizerConfig, context recognizerContext) (recognizer.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "tesseract":
		return tesseractRecognizer(cfg)

	case "ocrserver":
		return ocrserverRecognizer(cfg)

	case "openai":
		return openaiRecognizer(cfg)

	case "anthropic":
		return anthropicRecognizer(cfg)

	case "google":
		return googleRecognizer(cfg)

	case "bedrock":
		return bedrockRecognizer(cfg)

	case "replicate":
		return replicateRecognizer(cfg)

	case "custom":
		return customRecognizer(cfg)

	default:
		return nil, errors.New("invalid recognizer type: " + cfg.Type)
	}
}

func tesseractRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []tesseract.Option

	if cfg.Language != "" {
		options = append(options, tesseract.WithLanguage(cfg.Language))
	}

	return tesseract.New(options...)
}

func ocrserverRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []ocrserver.Option

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, ocrserver.WithClient(client))
	}

	return ocrserver.New(cfg.URL, options...)
}

func openaiRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, openai.WithClient(client))
	}

	return openai.New(cfg.URL, cfg.Model, options...)
}

func anthropicRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []anthropic.Option

	if cfg.Token != "" {
		options = append(options, anthropic.WithToken(cfg.Token))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, anthropic.WithClient(client))
	}

	return anthropic.New(cfg.URL, cfg.Model, options...)
}

func googleRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, google.WithClient(client))
	}

	return google.New(cfg.Model, options...)
}

func bedrockRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	return bedrock.New(cfg.Model)
}

func replicateRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []replicate.Option

	if cfg.URL != "" {
		options = append(options, replicate.WithURL(cfg.URL))
	}

	if cfg.Token != "" {
		options = append(options, replicate.WithToken(cfg.Token))
	}

	return replicate.New(cfg.Model, options...)
}

func customRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []custom.Option

	if cfg.Token != "" {
		options = append(options, custom.WithToken(cfg.Token))
	}

	if cfg.Device != "" {
		options = append(options, custom.WithDevice(cfg.Device))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, custom.WithClient(client))
	}

	return custom.New(cfg.URL, options...)
}
