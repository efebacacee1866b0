// Package client provides the Client and Vehicle aggregates. Clients own
// vehicles, and work orders reference both; the work-order aggregate
// enforces that a vehicle never appears without its client.
package client

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

const minClientNameLength = 2

// Client is a customer of the shop, identified in the real world by a
// document number (tax id or equivalent).
type Client struct {
	id       kernel.UUID
	name     string
	document string

	isConstructed bool
}

// NewClient creates a client with a fresh identifier.
func NewClient(name, document string) (*Client, error) {
	c := &Client{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setName(name),
		c.setDocument(document),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient recreates a client from persistence with its original
// identifier.
func RestoreClient(id kernel.UUID, name, document string) (*Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c, err := NewClient(name, document)
	if err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// Validate ensures the Client was properly constructed.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// Document returns the client's document number.
func (c *Client) Document() string {
	return c.document
}

func (c *Client) setName(name string) error {
	if len(name) < minClientNameLength {
		return errs.NewValueIsInvalidError("client name must have at least 2 characters")
	}
	c.name = name
	return nil
}

func (c *Client) setDocument(document string) error {
	if document == "" {
		return errs.NewValueIsRequiredError("document")
	}
	c.document = document
	return nil
}
