package config

import (
	"fmt"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-file").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Normalize, when non-nil, canonicalizes user input before Validate
	// and Set. Values are stored verbatim otherwise.
	Normalize func(value string) string

	// Validate, when non-nil, rejects values that Set must not store.
	Validate func(value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "delimiter",
		Description: "Single character separating fields in course files (default \",\")",
		Get:         func(cfg *Config) string { return cfg.Delimiter },
		Set:         func(cfg *Config, v string) { cfg.Delimiter = v },
		Validate:    validateDelimiter,
	},
	{
		Name:        "default-file",
		Description: "Course file used when --file is not specified",
		Get:         func(cfg *Config) string { return cfg.DefaultFile },
		Set:         func(cfg *Config, v string) { cfg.DefaultFile = v },
		Normalize:   strings.TrimSpace,
	},
	{
		Name:        "history",
		Description: "Record catalog loads in the local history (on or off)",
		Get:         func(cfg *Config) string { return cfg.History },
		Set:         func(cfg *Config, v string) { cfg.History = v },
		Normalize:   func(v string) string { return strings.ToLower(strings.TrimSpace(v)) },
		Validate:    validateHistory,
	},
}

// Apply normalizes, validates and stores value under spec.
func (k *KeySpec) Apply(cfg *Config, value string) (string, error) {
	if k.Normalize != nil {
		value = k.Normalize(value)
	}
	if k.Validate != nil {
		if err := k.Validate(value); err != nil {
			return "", err
		}
	}
	k.Set(cfg, value)
	return value, nil
}

func validateDelimiter(v string) error {
	if len(v) != 1 {
		return fmt.Errorf("delimiter must be exactly one character, got %q", v)
	}
	return nil
}

func validateHistory(v string) error {
	if v != HistoryOn && v != HistoryOff {
		return fmt.Errorf("history must be %q or %q, got %q", HistoryOn, HistoryOff, v)
	}
	return nil
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
