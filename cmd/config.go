package cmd

import (
	"fmt"
	"strings"

	httpin "dispatch/internal/adapters/in/http"
)

// Config carries everything the service needs from its environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AuthTokens is the raw API token list: comma-separated
	// "token:name:role" triples, e.g.
	// "s3cret:dispatcher@example.com:staff,topsecret:ops@example.com:admin".
	AuthTokens string

	// StrictTransitions switches the assignment state machine from the
	// permissive default to strict forward-only transitions.
	StrictTransitions bool

	// OverdueCronSpec schedules the overdue watchdog, six-field cron format.
	OverdueCronSpec string
}

// ParseAuthTokens expands the raw token list into the lookup table the auth
// middleware uses. Returns an error on malformed triples or roles.
func (c Config) ParseAuthTokens() (map[string]httpin.Principal, error) {
	tokens := make(map[string]httpin.Principal)

	for _, triple := range strings.Split(c.AuthTokens, ",") {
		triple = strings.TrimSpace(triple)
		if triple == "" {
			continue
		}

		parts := strings.SplitN(triple, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("malformed auth token entry %q, want token:name:role", triple)
		}

		role := httpin.Role(parts[2])
		if role != httpin.RoleAdmin && role != httpin.RoleStaff {
			return nil, fmt.Errorf("unknown role %q in auth token entry for %q", parts[2], parts[1])
		}

		tokens[parts[0]] = httpin.Principal{Name: parts[1], Role: role}
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("no auth tokens configured")
	}

	return tokens, nil
}
