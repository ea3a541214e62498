package plug

import (
	"reflect"
)

// Validate checks every value collected for the parameter name against
// validator tag rules (for instance "required,hostname" or "oneof=json yaml"),
// and fails with ErrMissingParameter on the first invalid one.
// Place it after the collector of that parameter.
func Validate(name, tag string) Plug {
	return func(ctx *Context, next Handler) Handler {
		return func(args []string) error {
			if ctx.IsHelp() {
				ctx.Printf("- Validate: %s with %q.\n", name, tag)
				return next(args)
			}

			for _, val := range ctx.Params(name) {
				if err := ctx.validator.Var(val, tag); err != nil {
					return wrapErrorf(ErrMissingParameter, err, "invalid param %s value %q", name, val)
				}
			}

			return next(args)
		}
	}
}

// validateStruct runs struct validation when val is a struct or a pointer
// to one. Other values are left alone.
func validateStruct(ctx *Context, val any) error {
	typ := reflect.TypeOf(val)
	if typ == nil {
		return nil
	}

	if typ.Kind() == reflect.Ptr {
		if reflect.ValueOf(val).IsNil() {
			return nil
		}

		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		return nil
	}

	return ctx.validator.Struct(val)
}
