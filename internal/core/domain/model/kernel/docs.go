// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID identifier type that every aggregate and
// entity uses for identity.
package kernel
