// Package services provides domain services that orchestrate business rules
// spanning multiple aggregates in the ordering backend.
//
// The package includes:
//   - NotificationPolicy: maps order lifecycle events to the parties that
//     should hear about them and the message template to use
//
// Domain services keep cross-aggregate logic out of the aggregates themselves,
// following Domain-Driven Design principles.
package services
