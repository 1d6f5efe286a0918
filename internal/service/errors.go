package service

import "errors"

// ErrNoQuestions is returned by the random-question lookups when the
// candidate set is empty.
var ErrNoQuestions = errors.New("no questions available")
