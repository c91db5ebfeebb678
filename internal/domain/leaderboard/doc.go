// Package leaderboard total-orders users by a composite progression key
// (total XP, level, current streak, user ID) and resolves a subject's rank
// even when they fall outside the returned window.
package leaderboard
