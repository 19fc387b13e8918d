package models

import "errors"

// Классы ошибок, общие для всех слоёв. Конкретные ошибки оборачивают их через %w.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrExpired    = errors.New("expired")
	ErrMismatch   = errors.New("mismatch")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage failure")
)
