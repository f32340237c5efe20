// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index or position outside the live range.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("vector: vector is empty")

	// ErrNegativeCount indicates a negative size or count argument.
	ErrNegativeCount = errors.New("vector: negative count")
)

// vectorErrorf wraps err with the Vector method that produced it.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// rangeErrorf reports index i outside a vector of length n.
func rangeErrorf(method string, i, n int) error {
	return fmt.Errorf("Vector.%s(%d) with length %d: %w", method, i, n, ErrOutOfRange)
}
