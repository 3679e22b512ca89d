//go:build vectordebug

package vector

import "fmt"

// debug enables precondition assertions on the unchecked operations.
const debug = true

func assertIndex(index, length int) {
	if index < 0 || length <= index {
		panic(ErrIndexOutOfRange.F("index %d with length %d", index, length))
	}
}

func assertPosition(index, length int) {
	if index < 0 || length < index {
		panic(ErrIndexOutOfRange.F("position %d with length %d", index, length))
	}
}

func assertNotEmpty(length int) {
	if length == 0 {
		panic(fmt.Errorf("%w: pop from an empty vector", ErrEmpty))
	}
}
