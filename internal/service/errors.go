package service

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound matches any NotFoundError via errors.Is.
	ErrProductNotFound = errors.New("product not found")

	ErrGetProducts   = errors.New("failed to get products")
	ErrCreateProduct = errors.New("failed to create product")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFoundError reports a product id that is not in the store.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
