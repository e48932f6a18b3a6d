package service

import (
	"github.com/velastore/vela/internal/domain"
)

// Catalog errors - use domain.ENOTFOUND
var (
	ErrProductNotFound = domain.Errorf(domain.ENOTFOUND, "", "Product not found")
	ErrVariantNotFound = domain.Errorf(domain.ENOTFOUND, "", "Product variant not found")
)

// Cart errors
var (
	ErrCartNotFound     = domain.Errorf(domain.ENOTFOUND, "", "Cart not found")
	ErrCartItemNotFound = domain.Errorf(domain.ENOTFOUND, "", "Cart item not found")
)

// Session errors
var (
	ErrGuestNotFound = domain.Errorf(domain.ENOTFOUND, "", "Guest session not found")
)

// Validation errors - use domain.EINVALID
var (
	ErrInvalidQuantity = domain.Errorf(domain.EINVALID, "", "Quantity must be greater than 0")
)
