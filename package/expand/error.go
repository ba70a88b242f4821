package expand

import (
	"errors"

	"go.scnd.dev/open/derive/utility/code"
)

var (
	ErrMalformedInput   = code.ErrMalformedInput
	ErrUnsupportedShape = code.ErrUnsupportedShape
	ErrUnknownTrait     = errors.New("unknown trait")
	ErrEmit             = errors.New("emit failed")
)
