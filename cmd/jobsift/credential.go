package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobsift/jobsift/internal/secrets"
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage the enrichment API key in the OS keychain",
}

var credentialSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API key for the configured provider",
	RunE:  runCredentialSet,
}

var credentialDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored API key for the configured provider",
	RunE:  runCredentialDelete,
}

func init() {
	credentialCmd.AddCommand(credentialSetCmd)
	credentialCmd.AddCommand(credentialDeleteCmd)
	rootCmd.AddCommand(credentialCmd)
}

func runCredentialSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	fmt.Printf("Enter API key for %s: ", cfg.Enrichment.Provider)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return fmt.Errorf("no input")
	}
	key := strings.TrimSpace(sc.Text())

	if err := secrets.SetAPIKey(cfg.Enrichment.Provider, key); err != nil {
		return err
	}
	fmt.Printf("Stored API key for %s in the OS keychain.\n", cfg.Enrichment.Provider)
	return nil
}

func runCredentialDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	if err := secrets.DeleteAPIKey(cfg.Enrichment.Provider); err != nil {
		return err
	}
	fmt.Printf("Removed API key for %s from the OS keychain.\n", cfg.Enrichment.Provider)
	return nil
}
