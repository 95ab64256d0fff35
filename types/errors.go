package types

import "errors"

// exported errors
var (
	ErrUnknownRole     = errors.New("role is not declared in the table")
	ErrUnknownResource = errors.New("resource is not declared in the schema")
	ErrUnknownAction   = errors.New("action is not declared for the resource")
	ErrIncompleteTable = errors.New("table misses rules for declared (role, resource, action) triples")
	ErrEmptySchema     = errors.New("schema declares no resources")
	ErrEmptyTable      = errors.New("table declares no roles")
)
