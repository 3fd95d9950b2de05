// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Andrea573
// Source: github.com/andrea573/allowlists

package allowlists

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// commentMarker starts a comment line in allowlist backing files.
const commentMarker = "//"

// ParseEntries parses allowlist entries from reader.
//
// Semantics:
// - a line whose first two characters are "//" is a comment and is skipped
// - every other line, blank lines included, is one literal entry
// - entries are not trimmed beyond line splitting; duplicates collapse
func ParseEntries(r io.Reader) (map[string]struct{}, error) {
	s := bufio.NewScanner(r)
	entries := make(map[string]struct{}, 16)

	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, commentMarker) {
			continue
		}

		entries[line] = struct{}{}
	}

	if err := s.Err(); err != nil {
		return entries, fmt.Errorf("scan entries: %w", err)
	}

	return entries, nil
}

// ParseEntriesString parses entries from string input.
func ParseEntriesString(src string) (map[string]struct{}, error) {
	return ParseEntries(strings.NewReader(src))
}
