// Package monitoring provides asynchronous observation of system events
// relevant to long-running build work: suspend/resume transitions, thermal
// load, memory pressure, and system load advisories.
//
// Each monitor kind is a process-wide singleton. Its start function is
// idempotent and non-blocking; once started, a monitor runs until process
// exit. Events are delivered to a single registered callback per kind, on a
// delivery goroutine that the caller doesn't control. Callbacks therefore run
// concurrently with arbitrary other work and must synchronize access to any
// shared state. Signal-driven events (SIGTSTP/SIGCONT) are marshaled through
// the Go runtime's signal channel before delivery, so callbacks never execute
// in a true signal handler context.
//
// Callback registration must complete before the corresponding monitor is
// started: the callback slots have single-writer-at-init, many-reader-at-
// delivery semantics, and re-registration after start is a contract violation
// that terminates the process.
//
// Monitors observe level changes, not a lossless event log: rapid repeated
// identical observations coalesce into fewer callback invocations.
package monitoring
