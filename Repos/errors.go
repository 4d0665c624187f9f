package Repos

import "fmt"

// DuplicateKeyError is returned by Locked.Add when the id is already stored.
type DuplicateKeyError struct {
	ID string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("An item with the same key has already been added: %s", e.ID)
}

// UnknownKindError is returned by New for a strategy label that isn't registered.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown repository type %q, want one of %v", e.Kind, Kinds())
}
