package config

import (
	"bytes"
	"os"

	"github.com/adrianliechti/lector/pkg/auth"
	"github.com/adrianliechti/lector/pkg/detector"
	"github.com/adrianliechti/lector/pkg/mcp"
	"github.com/adrianliechti/lector/pkg/pipeline"
	"github.com/adrianliechti/lector/pkg/recognizer"
	"github.com/adrianliechti/lector/pkg/tool"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	detectors   map[string]detector.Provider
	recognizers map[string]recognizer.Provider

	pipelines map[string]*pipeline.Pipeline

	tools map[string]tool.Provider

	mcps map[string]*mcp.Server
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerDetectors(file); err != nil {
		return nil, err
	}

	if err := c.registerRecognizers(file); err != nil {
		return nil, err
	}

	if err := c.registerPipelines(file); err != nil {
		return nil, err
	}

	if err := c.registerTools(file); err != nil {
		return nil, err
	}

	if err := c.registerMCP(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Authorizers []authorizerConfig `yaml:"authorizers"`

	Detectors   yaml.Node `yaml:"detectors"`
	Recognizers yaml.Node `yaml:"recognizers"`

	Pipelines yaml.Node `yaml:"pipelines"`

	Tools yaml.Node `yaml:"tools"`

	MCPs yaml.Node `yaml:"mcps"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
