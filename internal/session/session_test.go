package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveThenLoadCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	in := []Cookie{
		{Name: "li_at", Value: "secret", Domain: ".linkedin.com", Path: "/", Secure: true, HTTPOnly: true},
		{Name: "JSESSIONID", Value: "abc123", Domain: ".linkedin.com", Path: "/"},
	}

	if err := SaveCookies(path, in); err != nil {
		t.Fatalf("SaveCookies: %v", err)
	}

	out, err := LoadCookies(path)
	if err != nil {
		t.Fatalf("LoadCookies: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d cookies, want 2", len(out))
	}
	if out[0].Name != "li_at" || out[0].Value != "secret" || !out[0].Secure {
		t.Errorf("cookie did not round-trip: %+v", out[0])
	}
}

func TestSaveCookiesRestrictsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	if err := SaveCookies(path, []Cookie{{Name: "li_at", Value: "secret"}}); err != nil {
		t.Fatalf("SaveCookies: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("cookie file mode = %o, want 600", perm)
	}
}

func TestLoadCookiesMissingFileIsNotError(t *testing.T) {
	cookies, err := LoadCookies(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadCookies: %v", err)
	}
	if cookies != nil {
		t.Errorf("got %v, want nil for absent session", cookies)
	}
}

func TestLoadCookiesRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCookies(path); err == nil {
		t.Fatal("expected error for undecodable cookie file")
	}
}
