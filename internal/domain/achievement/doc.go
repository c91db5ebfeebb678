// Package achievement evaluates a user's aggregated statistics against the
// achievement catalog, producing per-achievement completion percentages and
// idempotent unlock decisions.
package achievement
