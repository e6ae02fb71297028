package services

import "errors"

// Failure kinds the controllers translate into HTTP status codes.
var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")

	// one error for both unknown user and wrong password, so callers
	// can't probe which accounts exist
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmptyCart       = errors.New("order has no items")
	ErrMissingAddress  = errors.New("delivery address is required")
	ErrInvalidTotal    = errors.New("order total is invalid")
	ErrInvalidQuantity = errors.New("item quantity must be positive")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrProductNotFound    = errors.New("product not found")
)
