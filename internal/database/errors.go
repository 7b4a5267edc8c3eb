package database

import "errors"

var (
	// ErrDuplicateUser возвращается на любой отказ вставки: дубликат username,
	// дубликат email и прочие нарушения ограничений не различаются.
	ErrDuplicateUser = errors.New("user already exists or is invalid")
)
