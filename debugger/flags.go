package debugger

import (
	"flag"
	"fmt"

	"github.com/elmerucr/E64-SQ/version"
)

// Options are the command line options for the debugger
type Options struct {
	Profile   bool
	Statsview bool
	Strict    bool
	NoGUI     bool
}

// ParseFlags parses the command line arguments. Arguments other than flags
// are not accepted
func ParseFlags(args []string) (Options, error) {
	var opts Options

	flgs := flag.NewFlagSet(version.ApplicationName, flag.ContinueOnError)
	flgs.BoolVar(&opts.Profile, "profile", false, "create CPU profile for emulator")
	flgs.BoolVar(&opts.Statsview, "statsview", false, "run the runtime statistics server")
	flgs.BoolVar(&opts.Strict, "strict", false, "halt emulation on blitter errors")
	flgs.BoolVar(&opts.NoGUI, "nogui", false, "run without a window")
	err := flgs.Parse(args)
	if err != nil {
		return opts, err
	}

	if len(flgs.Args()) > 0 {
		return opts, fmt.Errorf("too many arguments to debugger")
	}

	return opts, nil
}
