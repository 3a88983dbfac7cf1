// Package invtotal provides the valuation and ledger engine behind an
// inventory total overlay. It tracks how much the items a player carries are
// worth during a live session and what was gained or lost since the last
// trip to storage.
//
// The core functionalities include:
//   - Formatting: turning coin amounts into abbreviated ("1.2M") or exact
//     ("1,234,567") display strings.
//   - Valuation: summing quantity times price over a container snapshot,
//     honoring a user supplied list of ignored items.
//   - Ledger: tracking per item quantity deltas since the start of the current
//     run, and deriving a plain ledger or a gain/loss ledger from them.
//   - Lifecycle: classifying each poll tick as RUN or BANK, detecting the edges
//     between them and the short stabilization window after a new run.
//
// A Session owns all the mutable state. The host calls Session.Tick once per
// poll with an immutable TickInput and receives a Frame describing what to
// display. Nothing in this package blocks or runs in the background.
//
// The overlay package turns a Frame into a renderable layout, and the
// renderer package prints frames and ledgers as markdown for the `invt`
// command-line tool.
package invtotal
