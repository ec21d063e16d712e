package main

import (
	"flag"
	"log/slog"

	"github.com/adrianliechti/lector/config"
	"github.com/adrianliechti/lector/pkg/otel"
	"github.com/adrianliechti/lector/server"
)

var version string

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "server address")

	flag.Parse()

	if err := otel.Setup("lector", version); err != nil {
		panic(err)
	}

	if otel.EnableDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		panic(err)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		panic(err)
	}

	slog.Info("starting server", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		panic(err)
	}
}
