package types

import "errors"

var (
	ErrUnknownPeriod       = errors.New("unknown period")
	ErrUnknownVariant      = errors.New("unknown dashboard variant")
	ErrInvalidSelection    = errors.New("selection not offered by this dashboard variant")
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
)
