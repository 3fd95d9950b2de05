// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Andrea573
// Source: github.com/andrea573/allowlists

package allowlists

// EmptyPolicy decides what an allowlist with no entries means for queries.
type EmptyPolicy uint8

const (
	// DenyAllWhenEmpty means an empty allowlist admits no path. Default.
	DenyAllWhenEmpty EmptyPolicy = iota
	// AllowAllWhenEmpty means an empty allowlist admits every path.
	AllowAllWhenEmpty
)

// valid reports whether policy value is supported.
func (p EmptyPolicy) valid() bool {
	return p == DenyAllWhenEmpty || p == AllowAllWhenEmpty
}

// String returns the policy name for diagnostics.
func (p EmptyPolicy) String() string {
	switch p {
	case DenyAllWhenEmpty:
		return "deny_all_when_empty"
	case AllowAllWhenEmpty:
		return "allow_all_when_empty"
	default:
		return "unknown"
	}
}

// Info is one loaded allowlist: its entry set plus its empty policy.
// Values are immutable once constructed.
type Info struct {
	// entries holds literal allowed paths.
	entries map[string]struct{}
	// policy decides query results when entries is empty.
	policy EmptyPolicy
}

// newInfo builds one immutable allowlist value.
func newInfo(entries map[string]struct{}, policy EmptyPolicy) *Info {
	if entries == nil {
		entries = map[string]struct{}{}
	}

	if !policy.valid() {
		policy = DenyAllWhenEmpty
	}

	return &Info{
		entries: entries,
		policy:  policy,
	}
}

// IsAllowlisted reports whether path is a member of the entry set.
//
// Membership is byte-for-byte string equality: no normalization, no
// prefix/suffix matching, no globs.
func (i *Info) IsAllowlisted(path string) bool {
	_, ok := i.entries[path]
	return ok
}

// Empty reports whether the allowlist has no entries.
func (i *Info) Empty() bool {
	return len(i.entries) == 0
}

// Policy returns the configured empty policy.
func (i *Info) Policy() EmptyPolicy {
	return i.policy
}

// Len returns the number of distinct entries.
func (i *Info) Len() int {
	return len(i.entries)
}
