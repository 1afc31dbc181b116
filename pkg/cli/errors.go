package cli

import "github.com/m-mizutani/goerr/v2"

var (
	ErrOutOfRange        = goerr.New("input out of range")
	ErrUnsupportedFormat = goerr.New("unsupported format")
)
