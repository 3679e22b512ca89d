package vector

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrOutOfMemory is reported when the buffer can't grow to the requested capacity.
	// Core operations panic with it, the Try* variants return it.
	ErrOutOfMemory errorkit.Error = "vector: out of memory"
	// ErrIndexOutOfRange is returned by the checked layer when an index is outside of the live elements.
	ErrIndexOutOfRange errorkit.Error = "vector: index out of range"
	// ErrEmpty is returned when an operation requires at least one live element.
	ErrEmpty errorkit.Error = "vector: empty"
	// ErrInvalidConfig is returned by LoadConfig when a value is out of its accepted range.
	ErrInvalidConfig errorkit.Error = "vector: invalid config"
	// ErrForeignIterator is returned when an iterator doesn't point into the vector's current buffer.
	ErrForeignIterator errorkit.Error = "vector: iterator does not belong to this vector"
)
