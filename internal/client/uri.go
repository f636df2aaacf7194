package client

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseEndpoint parses an Elasticsearch URI and returns the base URL (without
// credentials, query or fragment), username, and password. Returns an error if
// the URI is invalid or has an unsupported scheme.
func ParseEndpoint(esURI string) (baseURL, username, password string, err error) {
	u, err := url.Parse(esURI)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid URI %q: %w", esURI, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", "", fmt.Errorf("unsupported scheme %q (must be http or https)", u.Scheme)
	}

	if u.Hostname() == "" {
		return "", "", "", fmt.Errorf("invalid URI %q: host is required", esURI)
	}

	if p := u.Port(); p != "" {
		port, convErr := strconv.Atoi(p)
		if convErr != nil || port < 1 || port > 65535 {
			return "", "", "", fmt.Errorf("invalid URI %q: port %q out of range", esURI, p)
		}
	}

	if u.User != nil {
		username = u.User.Username()
		password, _ = u.User.Password()
		u.User = nil
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), username, password, nil
}
