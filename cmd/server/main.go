package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/mpsalisbury/uno/internal/config"
	"github.com/mpsalisbury/uno/internal/directory"
	"github.com/mpsalisbury/uno/internal/server"
	"github.com/mpsalisbury/uno/internal/store/memory"
	"github.com/mpsalisbury/uno/internal/store/sqlite"
	"github.com/mpsalisbury/uno/pkg/discovery"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.ParseEnv()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	var store server.SessionStore
	if cfg.DBPath != "" {
		sqliteStore, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			logger.Error("open store", "path", cfg.DBPath, "err", err)
			os.Exit(1)
		}
		defer sqliteStore.Close()
		store = sqliteStore
		logger.Info("using sqlite store", "path", cfg.DBPath)
	} else {
		store = memory.NewStore()
		logger.Info("using in-memory store")
	}

	if cfg.Advertise {
		ad, err := discovery.AdvertiseService(cfg.Addr)
		if err != nil {
			logger.Error("advertise service", "err", err)
			os.Exit(1)
		}
		defer ad.Close()
		logger.Info("advertising via ssdp", "addr", cfg.Addr)
	}

	service := server.NewGameService(store, directory.Static{}, logger, cfg.MinPlayers, cfg.MaxPlayers)
	hub := server.NewHub(service, logger, cfg.OriginAllowlist)

	logger.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, hub.Handler()); err != nil {
		logger.Error("serve", "err", err)
		os.Exit(1)
	}
}
