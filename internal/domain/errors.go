package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a recoverable shop error.
type Kind int

const (
	KindInvalidData Kind = iota + 1
	KindInsufficientQuantity
	KindItemNotFound
	KindEmptyCart
)

func (k Kind) String() string {
	switch k {
	case KindInvalidData:
		return "invalid data"
	case KindInsufficientQuantity:
		return "insufficient quantity"
	case KindItemNotFound:
		return "item not found"
	case KindEmptyCart:
		return "empty cart"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks. Any *ShopError of the same kind matches.
var (
	ErrInvalidData          = &ShopError{Kind: KindInvalidData, Message: "invalid data"}
	ErrInsufficientQuantity = &ShopError{Kind: KindInsufficientQuantity, Message: "insufficient quantity"}
	ErrItemNotFound         = &ShopError{Kind: KindItemNotFound, Message: "item not found"}
	ErrEmptyCart            = &ShopError{Kind: KindEmptyCart, Message: "cart is empty"}
)

// ShopError is the single error type returned by the domain and the store.
type ShopError struct {
	Kind    Kind
	Message string
}

func (e *ShopError) Error() string {
	return e.Message
}

func (e *ShopError) Is(target error) bool {
	var t *ShopError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...any) *ShopError {
	return &ShopError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InsufficientQuantity builds a KindInsufficientQuantity error naming the item.
func InsufficientQuantity(format string, args ...any) *ShopError {
	return newError(KindInsufficientQuantity, format, args...)
}

// KindOf returns the kind of a shop error, or 0 when err is not one.
func KindOf(err error) Kind {
	var se *ShopError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
