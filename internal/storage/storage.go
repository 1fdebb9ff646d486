package storage

import "errors"

var ErrInvalidItem = errors.New("item scope and key are required")
