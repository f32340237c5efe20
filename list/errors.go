// SPDX-License-Identifier: MIT

package list

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("list: list is empty")

	// ErrInvalidPosition indicates an Iterator that does not address a live
	// node of this list: it belongs to another list, or its node was removed.
	ErrInvalidPosition = errors.New("list: invalid position")
)

// listErrorf wraps err with the List method that produced it.
func listErrorf(method string, err error) error {
	return fmt.Errorf("List.%s: %w", method, err)
}
