package domain

import "errors"

var (
	ErrItemNotFound = errors.New("item_not_found")
	ErrLastItem     = errors.New("last_item")
	ErrInvalidLang  = errors.New("invalid_lang")
)
