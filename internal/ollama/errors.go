package ollama

import "errors"

var (
	ErrServiceUnavailable = errors.New("ollama service is unavailable")
	ErrServiceUnreachable = errors.New("ollama host is unreachable")
	ErrModelNotAvailable  = errors.New("model is not available")
	ErrTimeout            = errors.New("ollama request timed out")
	ErrUnknown            = errors.New("unknown ollama error")
)
