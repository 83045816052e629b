// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the print shop.
//
// The package includes:
//   - OrderConfirmation: two-phase commit of an order's filament reservations
//   - OrderCancellation: returning held filament when an order is abandoned
//
// Both services mutate the order and its spools in memory only; persisting
// the result atomically is the application layer's job.
package services
