package resolve

import (
	"os"
	"unicode/utf8"
)

// LookupState classifies the outcome of an environment lookup.
type LookupState int

const (
	// Found means the variable is set and its value is valid text.
	Found LookupState = iota
	// NotFound means the variable is not set.
	NotFound
	// Invalid means the variable is set but its value is not valid text.
	Invalid
)

// Env is a read-only key to text lookup, normally backed by the process
// environment.
type Env interface {
	Lookup(name string) (string, LookupState)
}

type osEnv struct{}

// OS returns the Env backed by the process environment.
func OS() Env {
	return osEnv{}
}

func (osEnv) Lookup(name string) (string, LookupState) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", NotFound
	}
	if !utf8.ValidString(v) {
		return "", Invalid
	}
	return v, Found
}

// MapEnv is a deterministic Env for tests.
type MapEnv map[string]string

func (m MapEnv) Lookup(name string) (string, LookupState) {
	v, ok := m[name]
	if !ok {
		return "", NotFound
	}
	if !utf8.ValidString(v) {
		return "", Invalid
	}
	return v, Found
}
