package transport

import "errors"

var (
	ErrInvalidConfig = errors.New("transport.errors.invalid_config")
	ErrConnect       = errors.New("transport.errors.connect_failed")
	ErrSend          = errors.New("transport.errors.send_failed")
)
