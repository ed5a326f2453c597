// Package playback interprets a compiled scenario as an interactive session.
//
// A Session is a single-owner state machine over the ordered row sequence:
// title cards auto-advance, dialogue waits behind a click-delay gate, choice
// prompts branch by computed target identifier, and advancing past the final
// row returns to the title screen. All mutation happens inside the session's
// transition handlers; timers are scheduled through a cancellable,
// kind-keyed Scheduler so entering a scene always invalidates the previous
// scene's pending timers before arming new ones.
//
// Sessions serialize wholesale to a Snapshot and restore wholesale from one;
// corrupted save data is reported to the presenter and never interrupts the
// session.
package playback
