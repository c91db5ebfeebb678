// Package progression implements XP accounting, level lookup from a
// monotonic threshold table, and study-streak continuity.
//
// The award table and level thresholds are process-wide, read-only
// configuration: built once at startup (usually from internal/config) and
// never mutated afterwards.
package progression
