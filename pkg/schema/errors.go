package schema

import "errors"

var (
	ErrNotStruct       = errors.New("schema: type must be a struct or pointer to struct")
	ErrInvalidTag      = errors.New("schema: invalid struct tag")
	ErrDuplicateKey    = errors.New("schema: duplicate wire key")
	ErrInvalidDefault  = errors.New("schema: invalid default value")
	ErrUnsupportedType = errors.New("schema: unsupported field type")
)
