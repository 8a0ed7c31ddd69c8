package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/attractions"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/bot"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/channel"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/channel/discord"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/channel/telegram"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/channel/webchat"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/config"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/intent"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/logging"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logging.Logger.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	logging.Configure(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.WithComponent("gateway")

	client := attractions.NewClient(&cfg.Backend)
	dispatcher := intent.NewDispatcher(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := bot.NewLoop(dispatcher, logger)
	adapters := []channel.Adapter{}
	if cfg.Channels.Telegram.Enabled {
		adapters = append(adapters, telegram.NewTelegramAdapter(cfg.Channels.Telegram.Token))
	}
	if cfg.Channels.Discord.Enabled {
		adapters = append(adapters, discord.NewDiscordAdapter(cfg.Channels.Discord.Token))
	}
	if cfg.Channels.WebChat.Enabled {
		adapters = append(adapters, webchat.NewWebChatAdapter(cfg.Channels.WebChat.Port))
	}
	for _, adapter := range adapters {
		if err := adapter.Start(ctx); err != nil {
			logger.Error("Failed to start channel", "channel", adapter.Name(), "error", err)
			os.Exit(1)
		}
		logger.Info("Channel started", "channel", adapter.Name())
		go loop.Run(ctx, adapter)
	}

	srv := server.New(cfg, dispatcher, client, logger)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Shutting down", "signal", sig.String())
	case err := <-errCh:
		logger.Error("HTTP server failed", "error", err)
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	for _, adapter := range adapters {
		adapter.Stop()
	}
}
