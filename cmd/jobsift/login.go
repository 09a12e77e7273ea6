package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jobsift/jobsift/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in interactively and save the session",
	Long:  "Opens a browser on the job board login page, waits for you to finish logging in (including any verification), then saves the session cookies for later runs.",
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := session.Login(ctx, cfg.Session.CookiePath, os.Stdin, os.Stdout); err != nil {
		logger.Error("login failed", "error", err)
		os.Exit(1)
	}

	logger.Info("session saved", "path", cfg.Session.CookiePath)
	return nil
}
