// Package raw is the bootstrap env reader used before the logger exists.
// It must not import the logger package.
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads env vars under a prefix (e.g. "LOG_")
type Conf struct{ prefix string }

// New returns a Conf without prefix
func New() Conf { return Conf{} }

// Prefix appends p to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) lookup(k string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + k))
}

// Get returns the trimmed value, or def when unset/blank
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1/true/yes/on (any case); anything else set is false
func (c Conf) GetBool(key string, def bool) bool {
	switch v := strings.ToLower(c.lookup(key)); v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt returns a non-negative int, or def when unset or not a plain number
func (c Conf) GetInt(key string, def int) int {
	v := c.lookup(key)
	if v == "" || strings.ContainsAny(v, "+-") {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
