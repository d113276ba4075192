package rpc

import (
	"errors"

	"assistant-tools/pkg/response"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotObject       = errors.New("request must be a JSON object")
	ErrArgsNotObject   = errors.New("args must be a JSON object")
)

func responseMarshalFailure(err error) response.Envelope {
	return response.Failf("encode response: %v", err)
}
