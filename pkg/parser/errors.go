package parser

import "errors"

var (
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrInvalidYAML    = errors.New("invalid YAML")
	ErrInvalidTOML    = errors.New("invalid TOML")
	ErrInvalidMsgPack = errors.New("invalid MessagePack")
	ErrUnknownFormat  = errors.New("unknown body format")
)
