// Package frameloop provides frame schedulers for kaleido.
//
// Loop delivers frame callbacks from a fixed-rate ticker, the way a
// display's vertical refresh drives an animation-frame callback. Manual
// delivers them only when stepped, for tests and offline rendering.
//
// Both satisfy kaleido.Scheduler. Each RequestNextFrame arms exactly one
// callback; a pending callback is replaced by a later request, so at most
// one frame is ever queued.
package frameloop
