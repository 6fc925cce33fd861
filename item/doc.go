// SPDX-License-Identifier: MIT

// Package item defines the records that flow through rpgsack: raw catalog
// items, scored items fed to the optimizer, and the helpers that validate
// and aggregate them.
//
// Identity comes in two layers:
//
//   - ID       — the catalog key. Two copies of "Glass Bow" share it.
//   - Instance — a per-copy uuid stamped when the copy enters a pool.
//     Reconciliation partitions by Instance (and pool position), never by
//     comparing fields, so duplicate stacks stay distinguishable.
//
// All types are values; nothing here owns long-lived mutable state.
package item
