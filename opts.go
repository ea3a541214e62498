package plug

import (
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// OptFunc sets values in the context options.
type OptFunc func(opt *opts)

type opts struct {
	out       io.Writer
	env       Environ
	files     FileReader
	logger    *zap.Logger
	level     zap.AtomicLevel
	validator *validator.Validate
}

func (o opts) apply(optFuncs ...OptFunc) opts {
	for _, optFunc := range optFuncs {
		optFunc(&o)
	}

	return o
}

func defOpts() opts {
	return opts{
		out:   os.Stdout,
		env:   OSEnv{},
		files: OSFiles{},
		level: zap.NewAtomicLevelAt(zap.InfoLevel),
	}
}

// WithOutput sets the writer receiving help text and context dumps.
// It is os.Stdout by default.
func WithOutput(out io.Writer) OptFunc { return func(opt *opts) { opt.out = out } }

// WithEnv sets the environment read by GetEnvOr.
func WithEnv(env Environ) OptFunc { return func(opt *opts) { opt.env = env } }

// WithFiles sets the file reader used by file parameters.
func WithFiles(files FileReader) OptFunc { return func(opt *opts) { opt.files = files } }

// WithLogger sets the logger. The context does not change its level:
// verbose mode only enables Debug calls on the context itself.
func WithLogger(logger *zap.Logger) OptFunc { return func(opt *opts) { opt.logger = logger } }

// WithValidator sets the validator used by Validate and DecodeFileParam.
func WithValidator(val *validator.Validate) OptFunc {
	return func(opt *opts) { opt.validator = val }
}
