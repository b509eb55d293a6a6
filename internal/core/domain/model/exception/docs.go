// Package exception contains the ExceptionRecord aggregate and its HandleStatus
// state machine. Records are append-only; creating one flags the referenced
// vehicle and resolving the last open one clears the flag.
package exception
