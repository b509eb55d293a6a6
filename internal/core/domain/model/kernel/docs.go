// Package kernel contains shared value objects used across the domain model:
// UUID identities for fleets and exception records, natural-key identities for
// vehicles (plate number), drivers, and orders, and the Cargo value object that
// capacity checks are evaluated against.
//
// All value objects are immutable, created through factory functions that validate
// their input, and expose Validate for re-checking instances reconstructed from
// persistence.
package kernel
