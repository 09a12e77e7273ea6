// Package canonical derives the stable identity key for a posting link.
package canonical

import (
	"net/url"
	"strings"
)

// Canonicalize normalizes a raw posting link into its identity key:
// scheme + authority + path with the query string and fragment dropped and
// trailing slashes removed. Two links to the same listing that differ only
// by tracking parameters map to the same key.
//
// Canonicalize is pure and idempotent. Malformed input is passed through
// trimmed rather than rejected; links come from a trusted collaborator, so
// there is no error path here.
func Canonicalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""

	return strings.TrimRight(u.String(), "/")
}
