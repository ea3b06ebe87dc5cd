// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --print, --name, --verbose, --version

package main

import "flag"

type cliArgs struct {
	print   bool
	name    string
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.print, "print", false, "Non-interactive print mode: route the arguments and exit")
	flag.StringVar(&args.name, "name", "", "User name for the session")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
