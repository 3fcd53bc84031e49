package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/vk/sysglance/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("sysglance", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sysglance - a scriptable terminal system monitor.

Usage:
  sysglance [options] [LAYOUT_PATH]

Arguments:
  LAYOUT_PATH
    Path to the .hcl layout file describing panels and rows.

Options:
`)
		flagSet.PrintDefaults()
	}

	layoutFlag := flagSet.String("layout", "", "Path to the layout file.")
	lFlag := flagSet.String("l", "", "Path to the layout file (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cyclesFlag := flagSet.Int("cycles", 0, "Stop after this many render cycles. 0 runs until interrupted.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *layoutFlag != "" {
		path = *layoutFlag
	} else if *lFlag != "" {
		path = *lFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	cfg, err := app.NewConfig(app.Config{
		LayoutPath: path,
		LogFormat:  *logFormatFlag,
		LogLevel:   *logLevelFlag,
		Cycles:     *cyclesFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
