package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goldsnake/bank/internal/cli"
	"github.com/goldsnake/bank/internal/config"
	"github.com/goldsnake/bank/internal/repository"
	"github.com/goldsnake/bank/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting goldsnake bank",
		"data_file", cfg.Storage.DataFile,
		"log_level", cfg.Logger.Level,
	)

	store := repository.NewJSONStore(cfg.Storage.DataFile, cfg.Account.DailyWithdrawals)

	// A missing file yields an empty state; a corrupt one refuses to start
	// so the next save cannot silently replace it with an empty ledger.
	state, err := store.Load()
	if err != nil {
		logger.Error("failed to load data file", "error", err)
		os.Exit(1)
	}

	logger.Info("data loaded",
		"clients", len(state.Clients),
		"accounts", len(state.Accounts),
	)

	bank := service.NewBankService(state, store, &cfg.Account, logger)
	menu := cli.NewMenu(bank, os.Stdin, os.Stdout, logger)

	// An interrupt saves the session the same way menu exit does.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("interrupted, saving session")
		if err := bank.Save(); err != nil {
			logger.Error("failed to save on interrupt", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	if err := menu.Run(); err != nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}

	logger.Info("session saved, goodbye")
}
