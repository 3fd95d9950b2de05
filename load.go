// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Andrea573
// Source: github.com/andrea573/allowlists

package allowlists

import (
	"os"
	"path/filepath"
)

// loadSource identifies which resolution tier produced an entry set.
type loadSource uint8

const (
	// sourceMissing means no backing file opened at either tier.
	sourceMissing loadSource = iota
	// sourceResources means the file opened under the resources root.
	sourceResources
	// sourceRelative means the file opened at its relative path directly.
	sourceRelative
)

// String returns the source name for diagnostics.
func (s loadSource) String() string {
	switch s {
	case sourceResources:
		return "resources"
	case sourceRelative:
		return "relative"
	default:
		return "missing"
	}
}

// backingPath returns the relative backing file path for one logical name.
func backingPath(prefix, name string) string {
	return prefix + name + ".txt"
}

// loadEntries resolves and reads one backing file.
//
// Resolution order:
// 1. relPath joined under resourcesRoot, when a root is configured
// 2. relPath opened as-is
//
// A file that opens at neither tier yields an empty set; open failures are
// never propagated.
func loadEntries(resourcesRoot, relPath string) (map[string]struct{}, loadSource) {
	if resourcesRoot != "" {
		if entries, ok := readEntriesFile(filepath.Join(resourcesRoot, relPath)); ok {
			return entries, sourceResources
		}
	}

	if entries, ok := readEntriesFile(relPath); ok {
		return entries, sourceRelative
	}

	return map[string]struct{}{}, sourceMissing
}

// readEntriesFile reads one backing file when it opens.
func readEntriesFile(path string) (map[string]struct{}, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer func() { _ = f.Close() }()

	// A read failure past open is not distinguished from end-of-file:
	// lines scanned so far stay in the set.
	entries, _ := ParseEntries(f)
	return entries, true
}
