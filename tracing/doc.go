// Package tracing provides hooks that observe ring simulations: move
// counters, structured logging and database recording of move attempts.
package tracing
