// pkg/sysconfig/replacements.go

// Package sysconfig rewrites recorded interpreter build configuration
// values so they describe a different target layout. A Python build bakes
// the paths and toolchain of the machine it was built on into its sysconfig
// data; when that interpreter is relocated or provisioned elsewhere, the
// affected values are patched with declarative replacement rules.
package sysconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReplacementMode selects how a replacement applies to a value
type ReplacementMode string

const (
	// ModeFull replaces the entire value
	ModeFull ReplacementMode = "full"
	// ModePartial replaces only tokens equal to From
	ModePartial ReplacementMode = "partial"
)

// ReplacementEntry is one declarative patch rule for a sysconfig value
type ReplacementEntry struct {
	Mode ReplacementMode `yaml:"mode"`
	From string          `yaml:"from,omitempty"`
	To   string          `yaml:"to"`
}

// Patch applies the rule to a raw sysconfig value.
//
// In full mode the input is ignored and To is returned. In partial mode the
// value is split on runs of whitespace, tokens exactly equal to From are
// replaced with To, and the tokens are rejoined with single spaces — so the
// output is whitespace-normalized even when no token matched.
func (e ReplacementEntry) Patch(value string) string {
	switch e.Mode {
	case ModePartial:
		words := strings.Fields(value)
		for i, word := range words {
			if word == e.From {
				words[i] = e.To
			}
		}
		return strings.Join(words, " ")
	case ModeFull:
		return e.To
	}
	// Unrecognized modes leave the value untouched.
	return value
}

// Rules maps sysconfig keys to the replacement entries applied to them
type Rules map[string][]ReplacementEntry

// PatchValue applies every rule registered for key, in order. Keys without
// rules pass through untouched.
func (r Rules) PatchValue(key, value string) string {
	for _, entry := range r[key] {
		value = entry.Patch(value)
	}
	return value
}

// LoadRules reads a rule table from a YAML file. Entries with an
// unrecognized mode are rejected rather than silently misapplied.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	for key, entries := range rules {
		for _, entry := range entries {
			if entry.Mode != ModeFull && entry.Mode != ModePartial {
				return nil, fmt.Errorf("parsing rules: %s: unknown mode %q", key, entry.Mode)
			}
		}
	}
	return rules, nil
}
