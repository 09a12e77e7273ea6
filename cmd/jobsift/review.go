package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobsift/jobsift/internal/review"
	"github.com/jobsift/jobsift/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Browse persisted records in the terminal",
	RunE:  runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	recs, err := store.ReadRecords(cfg.Store.Path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("no record store at %s yet — run `jobsift run` first\n", cfg.Store.Path)
		return nil
	}
	if err != nil {
		return err
	}

	return review.Run(recs)
}
