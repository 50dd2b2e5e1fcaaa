package main

import (
	"log"

	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/spec-logic/speclogic-api/internal/catalog"
	"github.com/spec-logic/speclogic-api/internal/config"
	"github.com/spec-logic/speclogic-api/internal/server"
	"github.com/spec-logic/speclogic-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Load the component catalog
	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		fiberlog.Warnf("starting with an empty catalog: %v", err)
		cat = catalog.New(nil)
	} else {
		fiberlog.Infof("catalog loaded: %d components", cat.Len())
	}

	// Pick the build store: Redis when configured, in-memory otherwise
	var builds store.BuildStore = store.NewMemory()
	if cfg.RedisAddr != "" {
		builds = store.NewRedis(cfg.RedisAddr, 0)
	}

	app := server.New(cfg, cat, builds)

	// Start the server
	log.Fatal(app.Listen(cfg.ListenAddr))
}
