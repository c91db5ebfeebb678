// Package study is the orchestration facade over the engine's calculators:
// it wires the scheduler, progression calculator and achievement evaluator
// to the storage interfaces and emits progression events as state changes.
package study
