package balance

import "errors"

var (
	ErrBalanceNotFound = errors.New("Leave balance not found")
)
