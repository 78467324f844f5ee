// Package tradejournal provides the types and functions behind a personal
// trading journal. It is designed to be local-first, auditable, and
// version-controllable: everything is plain JSONL on disk.
//
// The core functionalities include:
//   - Ledger Management: Recording buy and sell transactions in a
//     chronological, deterministic order (timestamp, then id).
//   - FIFO Lot Matching: Pairing each sell against the oldest open buy lots
//     to produce closed trades with exact, decimal realized P&L.
//   - Aggregation: Deriving open positions, performance statistics (win
//     rate, profit factor, average and largest gains and losses), and
//     per-strategy breakdowns from the ledger.
//   - Journaling: Dated markdown notes, trading strategies with rule
//     checklists, and daily trading plans alongside the trades themselves.
//   - Market Data: Per-symbol price histories used for unrealized P&L, with
//     a remote quote provider to refresh them.
//
// This package serves as the foundational logic for the `tj` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tradejournal
