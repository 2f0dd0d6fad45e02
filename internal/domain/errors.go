package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrDuplicateName       = errors.New("a record with the same name already exists")
	ErrInvalidReference    = errors.New("one or more referenced records do not exist")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrEmptyOrder          = errors.New("order must contain at least one ticket")
)
