// Package garden holds the navigation controller: the single owner of the
// application state and the only place it changes.
//
// Presentation code sends intents to Controller.Dispatch and receives a
// snapshot of the new State together with any timers to schedule. A timer is
// plain data (a delay and the intent to dispatch when it fires), so the
// controller never starts goroutines or sleeps; whoever runs the event loop
// turns timers into callbacks on that same loop.
package garden
