package blocks

import "errors"

var (
	// ErrInvalidName is returned for block names that are not namespace/name.
	ErrInvalidName = errors.New("blocks: block name must be namespace/name")
	// ErrAlreadyRegistered is returned when a name is registered twice.
	ErrAlreadyRegistered = errors.New("blocks: block type already registered")
	// ErrNotRegistered is returned when a lookup misses.
	ErrNotRegistered = errors.New("blocks: block type not registered")
	// ErrFactoryRequired is returned when a type has no instance factory.
	ErrFactoryRequired = errors.New("blocks: block type requires a factory")
	// ErrInvalidSchema is returned for attribute declarations that cannot be extracted.
	ErrInvalidSchema = errors.New("blocks: invalid attribute schema")
	// ErrTemplatesRequired is returned when the host is built without a template service.
	ErrTemplatesRequired = errors.New("blocks: template service is required")
	// ErrMissingSaveView is returned when a registered type brings no save view.
	ErrMissingSaveView = errors.New("blocks: block type has no save view")
)
