package catalog

import "errors"

var (
	ErrNotFound     = errors.New("catalog item not found")
	ErrValidation   = errors.New("validation failed")
	ErrTooManyFiles = errors.New("too many images (max 5)")
	ErrBadImageType = errors.New("only jpeg and png images are accepted")
	ErrImageTooBig  = errors.New("image exceeds 5MB")
)
