// Package srs implements the spaced-repetition scheduler: an SM-2 family
// algorithm that updates a review card's ease factor, interval and
// repetition count from a recall quality rating.
package srs
