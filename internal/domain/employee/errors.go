package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrInvalidSortField      = errors.New("invalid sort field")
	ErrFinishBeforeStart     = errors.New("finish date must be after start date")
	ErrFinishDateWhenOngoing = errors.New("ongoing employment cannot have a finish date")
)
