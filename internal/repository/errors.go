package repository

import "errors"

// ErrNotFound is returned by lookups such as ArticleRepository.FindByID when
// no record matches.
var ErrNotFound = errors.New("record not found")
