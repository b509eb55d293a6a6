// Package vehicle contains the Vehicle aggregate, its Capacity value object, and
// the Status state machine governing a vehicle's operational lifecycle.
package vehicle
