package configs

import (
	"errors"
)

// First returns the value at path, or the zero value when no file sets it.
// Invalid files and undecodable values panic; they are fatal at startup.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
