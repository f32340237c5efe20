// SPDX-License-Identifier: MIT

package memory

import "errors"

var (
	// ErrTooLarge indicates a negative request or one above MaxAllocSize.
	ErrTooLarge = errors.New("memory: allocation size out of range")

	// ErrLimitExceeded indicates a Tracker byte limit would be exceeded.
	ErrLimitExceeded = errors.New("memory: allocation limit exceeded")

	// ErrInjectedFailure is returned by a Tracker configured WithFailAfter.
	ErrInjectedFailure = errors.New("memory: injected allocation failure")

	// ErrLeak indicates blocks were still live when Tracker.Check ran.
	ErrLeak = errors.New("memory: live blocks leaked")
)
