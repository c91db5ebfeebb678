// Package store defines the persistence interfaces the engine's services
// depend on. The engine ships no implementations: persistence mechanics
// belong to the embedding application, which wires its own storage behind
// these interfaces and is responsible for the atomicity guarantees each
// interface documents.
package store
