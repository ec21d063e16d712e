package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/lector/pkg/otel"
	"github.com/adrianliechti/lector/pkg/pipeline"
	"github.com/adrianliechti/lector/pkg/tool"
	"github.com/adrianliechti/lector/pkg/tool/recognize"
)

func (cfg *Config) RegisterTool(id string, p tool.Provider) {
	if cfg.tools == nil {
		cfg.tools = make(map[string]tool.Provider)
	}

	cfg.tools[id] = p
}

func (cfg *Config) Tools() []tool.Provider {
	var tools []tool.Provider

	if cfg.tools != nil {
		for _, p := range cfg.tools {
			tools = append(tools, p)
		}
	}

	return tools
}

func (cfg *Config) Tool(id string) (tool.Provider, error) {
	if cfg.tools != nil {
		if p, ok := cfg.tools[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("tool not found: " + id)
}

type toolConfig struct {
	Type string `yaml:"type"`

	Pipeline string `yaml:"pipeline"`
}

type toolContext struct {
	Pipeline *pipeline.Pipeline
}

func (cfg *Config) registerTools(f *configFile) error {
	var configs map[string]toolConfig

	if err := f.Tools.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Tools.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := toolContext{}

		if p, err := cfg.Pipeline(config.Pipeline); err == nil {
			context.Pipeline = p
		}

		tool, err := createTool(config, context)

		if err != nil {
			return err
		}

		if _, ok := tool.(otel.Tool); !ok {
			tool = otel.NewTool(id, tool)
		}

		cfg.RegisterTool(id, tool)
	}

	return nil
}

func createTool(cfg toolConfig, context toolContext) (tool.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "recognize":
		return recognizeTool(cfg, context)

	default:
		return nil, errors.New("invalid tool type: " + cfg.Type)
	}
}

func recognizeTool(cfg toolConfig, context toolContext) (tool.Provider, error) {
	return recognize.New(context.Pipeline)
}
