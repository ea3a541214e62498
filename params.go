package plug

import (
	"errors"
	"io/fs"

	"github.com/reeflective/plug/internal/scan"
)

// Convert transforms the values collected for a flag before they are stored.
type Convert func(values []string) ([]string, error)

// ConvertFile transforms the contents of a file parameter before it is stored.
type ConvertFile func(content string) (string, error)

// CollectParams collects the count values following the first occurrence
// of the flag name, converts them if convert is not nil, and appends them
// to the context parameters under name. The vector is passed down whole.
//
// It fails with ErrMissingParameter if the flag is absent, if fewer than
// count values follow it, if a value is empty or starts with "-", or if
// the conversion fails. A flag given as the very first argument is never
// recognized. A negative count panics with ErrConfiguration.
func CollectParams(name string, count int, convert Convert) Plug {
	return collectParams(name, count, nil, convert)
}

// CollectOptionalParams is like CollectParams, but stores def when
// the flag is absent. A flag present without valid values still fails.
func CollectOptionalParams(name string, count int, def []string, convert Convert) Plug {
	if def == nil {
		def = []string{}
	}

	return collectParams(name, count, def, convert)
}

// GetParamOr collects the single value of an optional flag,
// or def when the flag is absent.
func GetParamOr(name, def string) Plug {
	return CollectOptionalParams(name, 1, []string{def}, nil)
}

func collectParams(name string, count int, def []string, convert Convert) Plug {
	if count < 0 {
		panic(newErrorf(ErrConfiguration, "param %s collects a negative count of values: %d", name, count))
	}

	return func(ctx *Context, next Handler) Handler {
		return func(args []string) error {
			if ctx.IsHelp() {
				ctx.Printf("- CollectParams: %s with %d input data.\n", name, count)
				return next(args)
			}

			values, err := scan.Values(args, name, count)

			switch {
			case errors.Is(err, scan.ErrFlagNotFound) && def != nil:
				values = def
			case err != nil:
				return wrapErrorf(ErrMissingParameter, err, "expected to get param %s", name)
			case convert != nil:
				if values, err = convert(values); err != nil {
					return wrapErrorf(ErrMissingParameter, err, "invalid param %s", name)
				}
			}

			ctx.AddParam(name, values...)
			ctx.Debug("collected param", "name", name, "values", values)

			return next(args)
		}
	}
}

// GetEnvOr records the named environment variable in the context. An unset
// or empty variable falls back to the first default given; with none, the
// variable is recorded as undefined.
func GetEnvOr(name string, def ...string) Plug {
	return func(ctx *Context, next Handler) Handler {
		return func(args []string) error {
			if ctx.IsHelp() {
				fallback := "undefined"
				if len(def) > 0 {
					fallback = def[0]
				}

				ctx.Printf("- GetEnvOr: %s, default is %s\n", name, fallback)

				return next(args)
			}

			val, ok := ctx.environ.LookupEnv(name)

			switch {
			case ok && val != "":
				ctx.SetEnv(name, EnvValue{Value: val, Set: true})
			case len(def) > 0:
				ctx.SetEnv(name, EnvValue{Value: def[0], Set: true})
			default:
				ctx.SetEnv(name, EnvValue{})
			}

			ctx.Debug("read environment", "name", name, "set", ok)

			return next(args)
		}
	}
}

// GetFileParam collects the single value of the flag name as a file path,
// reads the whole file, and replaces the stored value with its contents,
// converted if convert is not nil.
//
// It fails with ErrFileNotFound if the file does not exist.
func GetFileParam(name string, convert ConvertFile) Plug {
	return Combine(
		CollectParams(name, 1, nil),
		readFileParam(name, convert),
	)
}

func readFileParam(name string, convert ConvertFile) Plug {
	return func(ctx *Context, next Handler) Handler {
		return func(args []string) error {
			if ctx.IsHelp() {
				ctx.Printf("  GetFileParam: read file with param %s.\n", name)
				return next(args)
			}

			// Earlier collectors may have stored values under the same name:
			// the path is the last value, appended by this plug's collector.
			var path string
			if values := ctx.Params(name); len(values) > 0 {
				path = values[len(values)-1]
			}

			data, err := ctx.files.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				return wrapErrorf(ErrFileNotFound, err, "file %s does not exist", path)
			}

			if err != nil {
				return wrapErrorf(ErrUnknown, err, "failed to read file %s", path)
			}

			content := string(data)

			if convert != nil {
				if content, err = convert(content); err != nil {
					return wrapErrorf(ErrMissingParameter, err, "invalid contents in file %s", path)
				}
			}

			ctx.SetParams(name, content)
			ctx.Debug("read file param", "name", name, "path", path, "bytes", len(data))

			return next(args)
		}
	}
}
