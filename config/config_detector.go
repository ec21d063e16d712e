package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/detector/custom"
	"github.com/adrianliechti/lector/pkg/detector/paddle"
	"github.com/adrianliechti/lector/pkg/detector/tesseract"
	"github.com/adrianliechti/lector/pkg/limiter"
	"github.com/adrianliechti/lector/pkg/otel"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterDetector(id string, p detector.Provider) {
	if cfg.detectors == nil {
		cfg.detectors = make(map[string]detector.Provider)
	}

	if _, ok := cfg.detectors[""]; !ok {
		cfg.detectors[""] = p
	}

	cfg.detectors[id] = p
}

func (cfg *Config) Detector(id string) (detector.Provider, error) {
	if cfg.detectors != nil {
		if p, ok := cfg.detectors[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("detector not found: " + id)
}

type detectorConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`

	Language string `yaml:"language"`
	Device   string `yaml:"device"`

	Proxy *proxyConfig `yaml:"proxy"`

	Limit *int `yaml:"limit"`
}

type detectorContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerDetectors(f *configFile) error {
	var configs map[string]detectorConfig

	if err := f.Detectors.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Detectors.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := detectorContext{
			Limiter: createLimiter(config.Limit),
		}

		detector, err := createDetector(config, context)

		if err != nil {
			return err
		}

		if _, ok := detector.(limiter.Detector); !ok {
			detector = limiter.NewDetector(context.Limiter, detector)
		}

		if _, ok := detector.(otel.Detector); !ok {
			detector = otel.NewDetector(config.Type, id, detector)
		}

		cfg.RegisterDetector(id, detector)
	}

	return nil
}

func createDetector(cfg detectorConfig, context detectorContext) (detector.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "paddle":
		return paddleDetector(cfg)

	case "tesseract":
		return tesseractDetector(cfg)

	case "custom":
		return customDetector(cfg)

	default:
		return nil, errors.New("invalid detector type: " + cfg.Type)
	}
}

func paddleDetector(cfg detectorConfig) (detector.Provider, error) {
	var options []paddle.Option

	if cfg.Token != "" {
		options = append(options, paddle.WithToken(cfg.Token))
	}

	if cfg.Model != "" {
		options = append(options, paddle.WithModule(cfg.Model))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, paddle.WithClient(client))
	}

	return paddle.New(cfg.URL, options...)
}

func tesseractDetector(cfg detectorConfig) (detector.Provider, error) {
	var options []tesseract.Option

	if cfg.Language != "" {
		options = append(options, tesseract.WithLanguage(cfg.Language))
	}

	return tesseract.New(options...)
}

func customDetector(cfg detectorConfig) (detector.Provider, error) {
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
