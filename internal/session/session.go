// Package session handles the interactive browser login that produces a
// reusable cookie file for the discovery collaborator.
package session

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"
)

const loginURL = "https://www.linkedin.com/login"

// Cookie is the persisted subset of a browser cookie.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"http_only"`
	Secure   bool    `json:"secure"`
}

// LoadCookies reads a previously saved session. A missing file is not an
// error; callers fall back to an interactive login.
func LoadCookies(path string) ([]Cookie, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session cookies: %w", err)
	}

	var cookies []Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("parsing session cookies: %w", err)
	}
	return cookies, nil
}

// SaveCookies writes the session to path. Cookies carry the login credential,
// so the file is owner-readable only.
func SaveCookies(path string, cookies []Cookie) error {
	data, err := json.MarshalIndent(cookies, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session cookies: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session cookies: %w", err)
	}
	return nil
}

// Login opens a visible browser on the login page, blocks until the operator
// confirms on confirm (log in manually, complete any verification, press
// Enter), then captures the browser cookies and writes them to path.
func Login(ctx context.Context, path string, confirm io.Reader, status io.Writer) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("enable-automation", false),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	if err := chromedp.Run(taskCtx, chromedp.Navigate(loginURL)); err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}

	fmt.Fprintln(status, "Log in manually, complete any verification, then press Enter here.")
	waitForEnter(ctx, confirm)
	if err := ctx.Err(); err != nil {
		return err
	}

	var cookies []Cookie
	err := chromedp.Run(taskCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		browserCookies, err := storage.GetCookies().Do(ctx)
		if err != nil {
			return err
		}
		for _, c := range browserCookies {
			cookies = append(cookies, Cookie{
				Name:     c.Name,
				Value:    c.Value,
				Domain:   c.Domain,
				Path:     c.Path,
				Expires:  c.Expires,
				HTTPOnly: c.HTTPOnly,
				Secure:   c.Secure,
			})
		}
		return nil
	}))
	if err != nil {
		return fmt.Errorf("capturing cookies: %w", err)
	}

	if err := SaveCookies(path, cookies); err != nil {
		return err
	}
	fmt.Fprintf(status, "Saved %d cookies to %s\n", len(cookies), path)
	return nil
}

// waitForEnter blocks until a line arrives on confirm or ctx is cancelled.
// On cancellation the reader goroutine stays parked in Scan until the process
// exits; confirm is stdin and cannot be interrupted mid-read.
func waitForEnter(ctx context.Context, confirm io.Reader) {
	done := make(chan struct{})
	go func() {
		sc := bufio.NewScanner(confirm)
		sc.Scan()
		close(done)
	}()
	select {
	case <-ctx.Done():
	case <-done:
	}
}
