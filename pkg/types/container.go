package types

import "fmt"

// Container holds a name and a single value of a caller-chosen type.
// Both are fixed at construction; the zero Container has an empty name and
// the zero value of T.
type Container[T any] struct {
	name  string
	value T
}

// NewContainer returns a Container holding name and value.
func NewContainer[T any](name string, value T) Container[T] {
	return Container[T]{name: name, value: value}
}

// Name returns the name given at construction.
func (c Container[T]) Name() string {
	return c.name
}

// Value returns the value given at construction.
func (c Container[T]) Value() T {
	return c.value
}

// String renders the container as "name: value".
func (c Container[T]) String() string {
	return fmt.Sprintf("%s: %v", c.name, c.value)
}
