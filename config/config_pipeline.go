package config

import (
	"errors"

	"github.com/adrianliechti/lector/pkg/pipeline"
)

func (cfg *Config) RegisterPipeline(id string, p *pipeline.Pipeline) {
	if cfg.pipelines == nil {
		cfg.pipelines = make(map[string]*pipeline.Pipeline)
	}

	if _, ok := cfg.pipelines[""]; !ok {
		cfg.pipelines[""] = p
	}

	cfg.pipelines[id] = p
}

func (cfg *Config) Pipeline(id string) (*pipeline.Pipeline, error) {
	if cfg.pipelines != nil {
		if p, ok := cfg.pipelines[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("pipeline not found: " + id)
}

type pipelineConfig struct {
	Detector   string `yaml:"detector"`
	Recognizer string `yaml:"recognizer"`

	Padding     *int `yaml:"padding"`
	Concurrency *int `yaml:"concurrency"`

	Language string `yaml:"language"`
}

func (cfg *Config) registerPipelines(f *configFile) error {
	var configs map[string]pipelineConfig

	if err := f.Pipelines.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Pipelines.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		pipeline, err := createPipeline(cfg, config)

		if err != nil {
			return err
		}

		cfg.RegisterPipeline(id, pipeline)
	}

	// a single detector and recognizer pair forms a pipeline even
	// without an explicit pipelines section
	if len(cfg.pipelines) == 0 {
		detector, err := cfg.Detector("")

		if err != nil {
			return nil
		}

		recognizer, err := cfg.Recognizer("")

		if err != nil {
			return nil
		}

		pipeline, err := pipeline.New(detector, recognizer)

		if err != nil {
			return err
		}

		cfg.RegisterPipeline("default", pipeline)
	}

	return nil
}

func createPipeline(cfg *Config, config pipelineConfig) (*pipeline.Pipeline, error) {
	detector, err := cfg.Detector(config.Detector)

	if err != nil {
		return nil, err
	}

	recognizer, err := cfg.Recognizer(config.Recognizer)

	if err != nil {
		return nil, err
	}

	var options []pipeline.Option

	if config.Padding != nil {
		options = append(options, pipeline.WithPadding(*config.Padding))
	}

	if config.Concurrency != nil {
		options = append(options, pipeline.WithConcurrency(*config.Concurrency))
	}

	if config.Language != "" {
		options = append(options, pipeline.WithLanguage(config.Language))
	}

	return pipeline.New(detector, recognizer, options...)
}
