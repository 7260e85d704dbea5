// Package tracker provides the types and operations for a local, single-user
// expense tracker. It is designed to be local-first and auditable: all state
// lives in plain text files the user can read and version.
//
// The core functionalities include:
//   - Account Bookkeeping: A registry of user accounts, each holding a weekly
//     income, a savings target, a savings vault balance, and an append-only
//     log of categorized expenses.
//   - Vault Management: Deposits and withdrawals against the savings vault,
//     with over-withdrawals rejected rather than clamped.
//   - Data Persistence: Encoding and decoding the account registry to and
//     from a flat, comma-separated record file, and writing per-user report
//     files in a fixed human-readable layout.
//
// This package serves as the foundational logic for the `xpt` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tracker
