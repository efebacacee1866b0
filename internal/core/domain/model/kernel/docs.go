// Package kernel provides core domain primitives for the workshop system.
// It implements the fundamental building blocks shared by every aggregate
// in the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Price: A non-negative monetary amount backed by arbitrary-precision decimals
//   - Quantity: A strictly positive integer count of services or parts
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
