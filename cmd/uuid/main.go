// Command uuid generates or describes UUIDs from the shell, mirroring
// the OSSP uuid command line tool: by default it prints one Version 1
// UUID in canonical form; flags select the version, a repeat count,
// raw binary output, and description instead of generation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/stdlib/uuid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line tool against args, writing generated
// or described output to stdout and any error, prefixed the way OSSP
// uuid's error()/usage() helpers do, to stderr. It returns the process
// exit code so main stays a one-line os.Exit wrapper and so tests can
// drive the tool without forking a subprocess.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uuid", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		iterate = fs.Bool("1", false, "reset to nil before each generation")
		count   = fs.Int("n", 1, "number of UUIDs to generate")
		raw     = fs.Bool("r", false, "emit raw 16-byte binary instead of canonical text")
		decode  = fs.Bool("d", false, "describe the given UUID instead of generating one")
		outFile = fs.String("o", "", "write output to this file instead of stdout")
		version = fs.Int("v", 1, "version to generate: 1, 3, or 4")
	)

	usage := func(format string, a ...any) int {
		if format != "" {
			fmt.Fprintf(stderr, "uuid:ERROR: "+format+"\n", a...)
		}
		fmt.Fprintln(stderr, "usage: uuid [-1] [-n count] [-r] [-d] [-o filename] [-v 1|3|4] [UUID|NAMESPACE NAME]")
		return 1
	}
	errorf := func(format string, a ...any) int {
		fmt.Fprintf(stderr, "uuid:ERROR: "+format+"\n", a...)
		return 1
	}

	if err := fs.Parse(args); err != nil {
		return usage("%v", err)
	}

	if *count < 1 {
		return usage("invalid argument to option 'n'")
	}
	if *version != 1 && *version != 3 && *version != 4 {
		return usage("invalid version on option 'v'")
	}

	out := stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return errorf("open: %v", err)
		}
		defer f.Close()
		out = f
	}

	rest := fs.Args()

	if *decode {
		if len(rest) != 1 {
			return usage("invalid number of arguments")
		}
		u, err := uuid.Parse(rest[0])
		if err != nil {
			return errorf("parse: %v", err)
		}
		fmt.Fprint(out, uuid.Describe(u))
		return 0
	}

	switch *version {
	case 1, 4:
		if len(rest) != 0 {
			return usage("invalid number of arguments")
		}
	case 3:
		if len(rest) != 2 {
			return usage("invalid number of arguments")
		}
	}

	gen, err := uuid.NewGenerator()
	if err != nil {
		return errorf("uuid.NewGenerator: %v", err)
	}
	defer gen.Close()

	var req uuid.Request
	switch *version {
	case 1:
		req = uuid.V1Request{}
	case 3:
		req = uuid.V3Request{Namespace: rest[0], Name: rest[1]}
	case 4:
		req = uuid.V4Request{}
	}

	for i := 0; i < *count; i++ {
		if *iterate {
			if err := gen.ResetClockSequence(); err != nil {
				return errorf("uuid.ResetClockSequence: %v", err)
			}
		}
		u, err := gen.Generate(req)
		if err != nil {
			return errorf("generate: %v", err)
		}
		if *raw {
			b := uuid.Pack(u)
			if _, err := out.Write(b[:]); err != nil {
				return errorf("write: %v", err)
			}
		} else {
			fmt.Fprintln(out, u.String())
		}
	}
	return 0
}
