package usecase

import (
	"errors"
	"net/url"
	"strings"
)

// ErrBadURL reports a URL without an extractable hostname.
var ErrBadURL = errors.New("url has no hostname")

// ResolveHost extracts the hostname of rawURL and strips a single leading "www." label.
func ResolveHost(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Join(ErrBadURL, err)
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", ErrBadURL
	}
	return strings.TrimPrefix(host, "www."), nil
}
