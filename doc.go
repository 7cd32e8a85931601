// Package rqdliq projects when cash can be taken out of fund investments and
// how long, on average, a portfolio takes to become liquid.
//
// The building blocks are:
//   - Frequency and ApproachDay: the calendar windows on which a fund accepts
//     redemptions (month, quarter, half year or year end).
//   - Fund: the redemption terms of a fund (frequency, settlement lag, gate and
//     lock-up).
//   - Tranche: one investment lot in a fund. It projects its own redemption
//     and settlement schedule from the fund terms and a decision date.
//   - Portfolio: the registry of funds and tranches. It aggregates tranche
//     schedules into weighted-average liquidity, cumulative settlement curves
//     and a liquidity ladder.
//
// Amounts are exact decimals, so a gated schedule always ends on exactly the
// remaining balance. Dates are day-granular values from the date package.
//
// This package is the engine behind the `rqd` command-line tool.
package rqdliq
