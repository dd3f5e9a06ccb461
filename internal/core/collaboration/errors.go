package collaboration

import "errors"

var (
	ErrNoQualifyingPair = errors.New("collaboration: no qualifying pair")
	ErrInvalidWorkers   = errors.New("collaboration: invalid worker count")
)
