// SPDX-License-Identifier: MIT

// Package backpack persists the caller-owned "current backpack" between
// sessions in a SQLite file (modernc.org/sqlite, no cgo).
//
// A slot is one named save: persona, capacity and the kept items in order,
// instance uuids included, so a resumed session partitions the very same
// copies it kept before.
package backpack
