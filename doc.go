// Package salesboard provides the computation core of a sales and financial
// performance dashboard. It turns typed in-memory tables delivered by a data
// loader into finished report structures, leaving rendering to the caller.
//
// The core functionalities include:
//   - Business Calendar: holiday-aware business-day counting used to project
//     sales trends over the remainder of a month.
//   - Goal Waterfall: evaluation of realized revenue against a category's
//     ascending goal tiers, under a sequential consumption policy or an
//     independent trend policy.
//   - Revenue Concentration: ABC/Pareto classification of customers by their
//     cumulative share of total value.
//   - Cash Flow Projection: reconciliation of receivable and payable ledgers
//     into a dense daily series of predicted and realized flows, with what-if
//     scenario entries applied to copies of the books.
//   - Sales Aggregation: channel classification of the transaction table and
//     the daily, per-salesperson and ranking views built on it.
//
// Every report builder is a pure function over immutable snapshots: no state
// is retained between calls and independent invocations may run in parallel.
// This package serves as the foundational logic for the `sbd` command-line
// tool.
package salesboard
