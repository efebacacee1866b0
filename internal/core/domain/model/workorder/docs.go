// Package workorder provides the domain entities and business logic for
// service-order management in the workshop. It implements the WorkOrder
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - WorkOrder: The aggregate root owning identity, client/vehicle binding, budget total and execution period
//   - Status: A state machine that enforces valid lifecycle transitions
//   - LineItem: A budgeted line billing a catalog service or a stocked part
//   - ExecutionPeriod: The timestamps bracketing the repair work
//
// Key business rules:
//   - A vehicle can only be bound to an order that already has a client
//   - Line items can only be added while the order is in diagnosis
//   - Pricing a positive total submits the budget for approval
//   - Approving a budget starts execution; rejecting it cancels the order
//   - Delivered is a final state with no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package workorder
