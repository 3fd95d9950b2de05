// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Andrea573
// Source: github.com/andrea573/allowlists

/*
Package allowlists implements a load-once registry of named file-path allowlists.

An allowlist is a set of literal path strings read from a line-oriented text
file; membership is exact string equality. The registry knows a fixed set of
logical names, resolves each backing file under an optional resources root with
a relative-path fallback, and treats a file that opens at neither location as an
empty list whose meaning is decided by that list's empty policy.

Basic flow:
  - build a registry (`NewRegistry`) or use the process-wide one (`Default`)
  - ask for decisions (`IsAllowlisted`)
  - probing callers use `Lookup` to observe unknown names as ordinary errors

Every known list is loaded exactly once, on first query, and the registry is
immutable afterwards; later edits to backing files are not observed. Querying a
name outside the known set is a programmer error and panics.
*/
package allowlists
