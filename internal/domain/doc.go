// Package domain defines the core business entities and errors for the
// mastery progression engine: review cards, question statistics, user
// progress, achievements and the derived records built from them.
package domain
