// Package events defines the progression events the engine emits and an
// in-memory emitter for dispatching them.
//
// Services emit events without knowing which handlers consume them; the
// embedding application registers handlers to turn unlock and level-up
// events into whatever delivery mechanism it owns. Notification delivery
// itself is outside the engine.
package events
