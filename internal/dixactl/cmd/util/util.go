// Package util holds what every dixactl subcommand shares: the IO streams,
// the factory for the tool registry and its environment, and error exits.
package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/dixa"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
	"github.com/kiosk404/dixa-mcp/internal/pkg/options"
)

// IOStreams provides the standard names for iostreams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Factory provides the objects subcommands operate on.
type Factory interface {
	Registry() (*registry.Registry, error)
	Environment() *adapter.Environment
}

type factory struct {
	opts *options.DixaOptions

	once sync.Once
	reg  *registry.Registry
	err  error
}

// NewFactory returns a Factory backed by opts. The registry is built once.
func NewFactory(opts *options.DixaOptions) Factory {
	return &factory{opts: opts}
}

func (f *factory) Registry() (*registry.Registry, error) {
	f.once.Do(func() {
		r := registry.New()
		if err := dixa.Register(r); err != nil {
			f.err = err
			return
		}
		f.reg = r
	})
	return f.reg, f.err
}

func (f *factory) Environment() *adapter.Environment {
	return f.opts.Environment()
}

// DefaultErrorExitCode defines exit the code for failed action generally.
const DefaultErrorExitCode = 1

var fatalErrHandler = fatal

// BehaviorOnFatal replaces the default fatal handler. Tests use it to keep
// the process alive.
func BehaviorOnFatal(f func(string, int)) {
	fatalErrHandler = f
}

// DefaultBehaviorOnFatal restores the default fatal handler.
func DefaultBehaviorOnFatal() {
	fatalErrHandler = fatal
}

func fatal(msg string, code int) {
	if len(msg) > 0 {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprint(os.Stderr, msg)
	}
	os.Exit(code)
}

// CheckErr prints a user friendly error to STDERR and exits with a non-zero
// exit code.
func CheckErr(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "error: ") {
		msg = "error: " + msg
	}
	fatalErrHandler(msg, DefaultErrorExitCode)
}

// UsageErrorf returns an error pointing the user at the command's help.
func UsageErrorf(cmdPath string, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s\nSee '%s -h' for help and examples", msg, cmdPath)
}
