package plug

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Decoder turns the contents of a file parameter into a value.
type Decoder func(data []byte) (any, error)

// YAML returns a decoder producing a *T out of YAML contents.
func YAML[T any]() Decoder {
	return func(data []byte) (any, error) {
		val := new(T)
		if err := yaml.Unmarshal(data, val); err != nil {
			return nil, err
		}

		return val, nil
	}
}

// JSON returns a decoder producing a *T out of JSON contents.
func JSON[T any]() Decoder {
	return func(data []byte) (any, error) {
		val := new(T)
		if err := json.Unmarshal(data, val); err != nil {
			return nil, err
		}

		return val, nil
	}
}

// DecodeFileParam reads the file named by the flag name like GetFileParam,
// decodes its contents, validates the result when it is a struct, and
// hands it to the next plugs as the context payload.
//
// Decoding and validation failures are ErrMissingParameter errors, and
// a payload already pending is an ErrProtocolViolation.
func DecodeFileParam(name string, decode Decoder) Plug {
	return Combine(
		GetFileParam(name, nil),
		decodeParam(name, decode),
	)
}

func decodeParam(name string, decode Decoder) Plug {
	return func(ctx *Context, next Handler) Handler {
		return func(args []string) error {
			if ctx.IsHelp() {
				ctx.Printf("  DecodeFileParam: decode file contents of %s.\n", name)
				return next(args)
			}

			val, err := decode([]byte(ctx.Param(name, "")))
			if err != nil {
				return wrapErrorf(ErrMissingParameter, err, "failed to decode param %s", name)
			}

			if err := validateStruct(ctx, val); err != nil {
				return wrapErrorf(ErrMissingParameter, err, "invalid param %s", name)
			}

			if err := ctx.PutPayload(val); err != nil {
				return err
			}

			return next(args)
		}
	}
}
