// Package secrets stores the enrichment-service credential in the OS
// keychain so the config file can omit it.
package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// Service groups this app's secrets in the OS keychain.
const Service = "jobsift"

func account(provider string) string {
	return "jobsift:enrichment:" + provider
}

// GetAPIKey looks up the stored credential for the given enrichment provider.
func GetAPIKey(provider string) (string, error) {
	if strings.TrimSpace(provider) == "" {
		return "", errors.New("provider name is empty")
	}
	key, err := keyring.Get(Service, account(provider))
	if err != nil {
		return "", fmt.Errorf("enrichment api key not found for %s (store one with `jobsift credential set`): %w", provider, err)
	}
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("stored api key for %s is empty", provider)
	}
	return key, nil
}

// SetAPIKey stores the credential for the given enrichment provider.
func SetAPIKey(provider, key string) error {
	if strings.TrimSpace(provider) == "" {
		return errors.New("provider name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(Service, account(provider), key)
}

// DeleteAPIKey removes the stored credential for the given provider.
func DeleteAPIKey(provider string) error {
	if strings.TrimSpace(provider) == "" {
		return errors.New("provider name is empty")
	}
	return keyring.Delete(Service, account(provider))
}
