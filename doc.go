// Package bankbook provides the core ledger engine for a single-operator
// bank book: customer accounts, the business rules that govern deposits,
// withdrawals and transfers, and an append-only transaction log used to
// answer balance and audit queries. It is designed to be local-first and
// auditable: every state change is recorded in the log, and derived values
// such as daily withdrawal totals are always recomputed from it.
//
// The core functionalities include:
//   - Account Registry: creation and lookup of accounts with monotonic
//     account-number allocation that survives restarts.
//   - Rule Engine: deposit, withdraw, transfer, close/reopen, rename and
//     PIN-set operations validated against minimum balances, the
//     single-deposit ceiling and the daily withdrawal cap.
//   - Ledger Log: an immutable, chronological record of every operation,
//     the sole source of truth for time-windowed limits.
//   - Reporting: read-only derived views (top accounts, averages, age
//     extremes, interest projections) over the registry and the log.
//   - Data Persistence: encoding and decoding of accounts and log entries
//     to and from plain, human-readable text formats.
//
// This package serves as the foundational logic for the `bbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package bankbook
