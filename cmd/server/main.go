// tierpricing HTTP server entry point.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"tierpricing/adapters/storage"
	"tierpricing/api"
	"tierpricing/internal/config"
	"tierpricing/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	catalogPath := flag.String("catalog", "", "pricing catalog file (.hcl or .json)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	path := cfg.Catalog.Path
	if *catalogPath != "" {
		path = *catalogPath
	}
	tree, err := storage.Load(path)
	if err != nil {
		logging.Error("loading catalog", zap.Error(err))
		os.Exit(1)
	}

	listen := cfg.Server.Address
	if *addr != "" {
		listen = *addr
	}

	srv := api.NewServer(tree, version)
	logging.Info("server starting",
		zap.String("address", listen),
		zap.String("catalog", path),
		zap.Int("tiers", len(tree.Tiers)))
	if err := http.ListenAndServe(listen, srv); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
