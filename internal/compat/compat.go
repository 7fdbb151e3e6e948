// Package compat checks declared extension versions against the
// compatibility rules of the core schema kinds.
//
// Rules are keyed by core kind name (Extension, Container, Node, Edge) and
// hold a semantic-version range such as "=1". The comparison itself is done
// by a Matcher; the default one is backed by Masterminds/semver.
package compat

import (
	"fmt"
	"maps"

	"github.com/Masterminds/semver/v3"
)

// Rules maps a kind name to the version range it requires.
type Rules map[string]string

// DefaultRules returns the ranges every core kind supports.
func DefaultRules() Rules {
	return Rules{
		"Extension": "=1",
		"Container": "=1",
		"Node":      "=1",
		"Edge":      "=1",
	}
}

// Merge returns a copy of r with every entry of override applied on top.
func (r Rules) Merge(override Rules) Rules {
	merged := maps.Clone(r)
	if merged == nil {
		merged = Rules{}
	}
	maps.Copy(merged, override)
	return merged
}

// Lookup returns the range required for kind, if a rule exists.
func (r Rules) Lookup(kind string) (string, bool) {
	rng, ok := r[kind]
	return rng, ok
}

// Matcher decides whether a version satisfies a range.
type Matcher interface {
	Satisfies(version, rng string) (bool, error)
}

// SemverMatcher is a Matcher using semantic-version constraints. Partial
// versions are accepted, so "1" means 1.0.0.
type SemverMatcher struct{}

// Satisfies parses both sides and checks the constraint. Unparseable input is
// an error, never a silent mismatch.
func (SemverMatcher) Satisfies(version, rng string) (bool, error) {
	constraint, err := semver.NewConstraint(rng)
	if err != nil {
		return false, fmt.Errorf("invalid version range %q: %w", rng, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", version, err)
	}
	return constraint.Check(v), nil
}

// Validate checks that every range in r parses. It lets configuration errors
// surface before a run starts.
func (r Rules) Validate() error {
	for kind, rng := range r {
		if _, err := semver.NewConstraint(rng); err != nil {
			return fmt.Errorf("compatibility rule for %q: invalid range %q: %w", kind, rng, err)
		}
	}
	return nil
}
