// Package yieldcurve provides types and functions to generate and analyze a
// synthetic US Treasury yield dataset across four maturities (3M, 2Y, 10Y,
// 30Y). It is designed to be deterministic and local-first: a fixed seed
// produces bit-identical series across runs, and all outputs are flat files.
//
// The core functionalities include:
//   - Series Generation: Building a daily yield series over a lookback
//     window, one independent random walk per maturity around fixed base
//     levels.
//   - Curve Metrics: Deriving slope (10Y-2Y), steepness (30Y-3M), short and
//     long rates, and the inversion condition from the latest observation.
//   - Inversion Detection: Scanning the full series for negative 10Y-2Y
//     spreads and summarizing their frequency and depth.
//   - Charting: Rendering a two-panel image with the current curve snapshot
//     and the historical yield trends.
//   - Data Persistence: Encoding and decoding the series to and from
//     human-readable formats (CSV and JSONL).
//
// This package serves as the foundational logic for the `bya` command-line
// tool.
package yieldcurve
