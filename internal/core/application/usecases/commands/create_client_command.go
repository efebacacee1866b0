package commands

import (
	"errors"

	"workshop/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	name     string
	document string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a client registration command. Name and
// document bounds are enforced by the aggregate.
func NewCreateClientCommand(name, document string) (CreateClientCommand, error) {
	return CreateClientCommand{
		name:     name,
		document: document,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// Name returns the client's name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Document returns the client's identifying document.
func (c CreateClientCommand) Document() string {
	return c.document
}
