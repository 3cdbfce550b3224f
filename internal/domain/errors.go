package domain

import "errors"

var (
	ErrDuplicateSlot = errors.New("time slot already exists")
	ErrSlotNotFound  = errors.New("time slot not found")
)
