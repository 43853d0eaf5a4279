package inventory

import "errors"

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrIncompleteSaleData = errors.New("incomplete sale data")
	ErrItemNotEligible    = errors.New("item not eligible for discount")
	ErrInvalidDiscount    = errors.New("discount percentage out of range")
	ErrGroupingInput      = errors.New("item missing required grouping fields")
)
