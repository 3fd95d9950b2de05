// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Andrea573
// Source: github.com/andrea573/allowlists

package allowlists

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// defaultPathPrefix is the relative directory prefix of backing files.
const defaultPathPrefix = "compiler/allowlists/"

// registeredAllowlist is one build-time allowlist registration.
type registeredAllowlist struct {
	// name is the logical allowlist name and backing file stem.
	name string
	// policy decides query results when the loaded entry set is empty.
	policy EmptyPolicy
}

// knownAllowlists is the fixed build-time set of logical allowlist names.
// The set is not extensible at runtime.
var knownAllowlists = []registeredAllowlist{
	{name: "weak_imports"},
	{name: "test_allowlist_empty_allow_all", policy: AllowAllWhenEmpty},
	{name: "test_allowlist_empty_allow_none"},
	{name: "test_allowlist"},
}

// Options configures registry loading behavior.
type Options struct {
	// ResourcesRoot is a deployment-specific root directory tried before
	// relative paths. Empty value skips the first resolution tier.
	ResourcesRoot string
	// PathPrefix is the relative directory prefix of backing files.
	// Empty value defaults to "compiler/allowlists/".
	PathPrefix string
	// Logger receives load diagnostics and the unknown-name report.
	// Nil value defaults to a no-op logger.
	Logger *zerolog.Logger
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.PathPrefix == "" {
		opts.PathPrefix = defaultPathPrefix
	}

	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
}

// Registry owns the canonical set of named allowlists and serves membership
// queries.
//
// The table is built exactly once, on first query, and is immutable
// afterwards, so steady-state lookups need no locking.
type Registry struct {
	// opts are loading options frozen at construction.
	opts Options
	// once guards the one-time table load.
	once sync.Once
	// table maps logical allowlist name to its loaded contents.
	table map[string]*Info
}

// NewRegistry creates a registry over the fixed set of known allowlists.
//
// Backing files are not touched until the first query.
func NewRegistry(opts Options) *Registry {
	opts.applyDefaults()
	return &Registry{opts: opts}
}

// IsAllowlisted reports whether file is admitted by the named allowlist.
//
// Decision policy:
// - non-empty list: exact membership of file in the entry set
// - empty list: true iff the list is configured AllowAllWhenEmpty
//
// The name must be one of the known logical names. An unknown name is a
// programmer error: the call logs and panics with ErrUnknownAllowlist
// instead of returning a decision.
func (r *Registry) IsAllowlisted(allowlist, file string) bool {
	info, err := r.Lookup(allowlist)
	if err != nil {
		if r != nil {
			r.opts.Logger.Error().Str("allowlist", allowlist).Msg("allowlist query rejected")
		}

		panic(err)
	}

	if !info.Empty() {
		return info.IsAllowlisted(file)
	}

	return info.Policy() == AllowAllWhenEmpty
}

// Lookup returns the loaded allowlist for one known logical name.
//
// This is the probing form of the query contract: an unknown name comes back
// as ErrUnknownAllowlist instead of a panic.
func (r *Registry) Lookup(allowlist string) (*Info, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}

	r.load()

	info, ok := r.table[allowlist]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAllowlist, allowlist)
	}

	return info, nil
}

// Names returns the known logical allowlist names in sorted order.
func (*Registry) Names() []string {
	names := make([]string, 0, len(knownAllowlists))
	for _, reg := range knownAllowlists {
		names = append(names, reg.name)
	}

	sort.Strings(names)
	return names
}

// load populates the table on first use.
//
// Every query past load observes the same fully-populated table.
func (r *Registry) load() {
	r.once.Do(func() {
		table := make(map[string]*Info, len(knownAllowlists))
		for _, reg := range knownAllowlists {
			relPath := backingPath(r.opts.PathPrefix, reg.name)
			entries, source := loadEntries(r.opts.ResourcesRoot, relPath)
			table[reg.name] = newInfo(entries, reg.policy)

			r.opts.Logger.Debug().
				Str("allowlist", reg.name).
				Str("path", relPath).
				Stringer("source", source).
				Stringer("policy", reg.policy).
				Int("entries", len(entries)).
				Msg("allowlist loaded")
		}

		r.table = table
	})
}

// defaultRegistry memoizes the process-wide registry.
var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(Options{})
})

// Default returns the process-wide registry, built on first use.
func Default() *Registry {
	return defaultRegistry()
}

// IsAllowlisted reports whether file is admitted by the named allowlist of
// the process-wide registry.
func IsAllowlisted(allowlist, file string) bool {
	return Default().IsAllowlisted(allowlist, file)
}
