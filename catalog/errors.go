// SPDX-License-Identifier: MIT

package catalog

import "errors"

var (
	// ErrMalformed indicates the source is not a list of item objects.
	ErrMalformed = errors.New("catalog: malformed source")

	// ErrUnsupportedFormat indicates a file extension Load does not know.
	ErrUnsupportedFormat = errors.New("catalog: unsupported format")

	// ErrDuplicateID indicates two entries resolve to the same id.
	ErrDuplicateID = errors.New("catalog: duplicate item id")

	// ErrNotFound indicates Lookup found no item; the message lists suggestions.
	ErrNotFound = errors.New("catalog: item not found")
)
