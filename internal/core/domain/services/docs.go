// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the parcel system. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - NotificationTrigger: builds the mail notices emitted when a delivery is
//     created or canceled
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
