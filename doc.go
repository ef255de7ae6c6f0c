// Package fund implements the allocation engine of a founders/investors
// fund. It is a stateless calculator: given the cash legs of an accounting
// window, the ending wallet size and the unrealized profit at the end of that
// window, it reconstructs what each participant is owed.
//
// The core functionalities include:
//   - Leg Model: the closed set of cash events (seed, investor contributions,
//     entry and management fees, moonbag carries, draws) and their JSONL
//     encoding.
//   - Recompute: the deterministic pipeline that expands implicit entry-fee
//     legs, time-weights capital into dollar-days, splits realized profit
//     gross and net of the investors' management fee, splits the unrealized
//     moonbag, and reconciles ending capital.
//   - Validate: a pure predicate set that checks every conservation law on
//     the outputs and reports business-rule anomalies without blocking.
//   - Scenarios: what-if overrides, contribution impact previews and audit
//     snapshots ready to be handed to a persistence collaborator.
//
// The engine owns no state and performs no I/O. It is safe for concurrent
// use: every call works on its own copy of the input.
//
// This package serves as the foundational logic for the `ffc` command-line
// tool.
package fund
