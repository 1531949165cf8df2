package service

import "errors"

var (
	ErrFailedValidation = errors.New("failed validation")
	ErrRecordNotFound   = errors.New("record not found")
	ErrEditConflict     = errors.New("edit conflict")
	ErrBadRequest       = errors.New("bad request")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrRecordReferenced = errors.New("record referenced")
)
