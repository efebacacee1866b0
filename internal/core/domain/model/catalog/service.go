// Package catalog provides the Service aggregate: a labor entry in the
// shop's service catalog with a strictly positive price. Work-order line
// items snapshot the catalog price at the moment they are added.
package catalog

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrServiceIsNotConstructed is returned when a Service instance was not
// created through NewService or RestoreService.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService or RestoreService")

const minServiceNameLength = 2

// Service is a billable labor entry in the catalog.
//
// Invariants:
//   - The name has at least two characters
//   - The price is strictly positive; free services are not listed
type Service struct {
	id    kernel.UUID
	name  string
	price kernel.Price

	isConstructed bool
}

// NewService creates a catalog service with a fresh identifier.
func NewService(name string, price kernel.Price) (*Service, error) {
	s := &Service{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setName(name),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreService recreates a service from persistence with its original
// identifier.
func RestoreService(id kernel.UUID, name string, price kernel.Price) (*Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s, err := NewService(name, price)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

// Validate ensures the Service was properly constructed.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two services by their unique identifiers.
func (s *Service) IsEqual(other *Service) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the service's display name.
func (s *Service) Name() string {
	return s.name
}

// Price returns the current labor price.
func (s *Service) Price() kernel.Price {
	return s.price
}

// Total returns the price for the given quantity of this service.
func (s *Service) Total(quantity kernel.Quantity) kernel.Price {
	return s.price.MulQuantity(quantity)
}

// UpdateName replaces the display name.
func (s *Service) UpdateName(name string) error {
	return s.setName(name)
}

// UpdatePrice replaces the labor price. Existing work-order line items keep
// their snapshot and are unaffected.
func (s *Service) UpdatePrice(price kernel.Price) error {
	return s.setPrice(price)
}

func (s *Service) setName(name string) error {
	if len(name) < minServiceNameLength {
		return errs.NewValueIsInvalidError("service name must have at least 2 characters")
	}
	s.name = name
	return nil
}

func (s *Service) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("service price must be greater than zero")
	}
	s.price = price
	return nil
}
