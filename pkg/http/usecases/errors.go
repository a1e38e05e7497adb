package usecases

import "errors"

var (
	ErrAirportNotFound = errors.New("airport not found")
	ErrPathNotFound    = errors.New("no route exists between the airports")
	ErrReloadDisabled  = errors.New("graph reload is disabled")
)
