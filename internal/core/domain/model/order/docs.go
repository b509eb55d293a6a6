// Package order contains the Order aggregate and its Status state machine, which
// together govern a cargo order's lifecycle from Pending through assignment into
// the Completed or Cancelled terminal states.
package order
