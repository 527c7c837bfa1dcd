package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrBookIDExists = errors.New("book with this id already exists")
)
