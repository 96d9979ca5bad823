package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/BeatGlow/portrait"
)

func main() {
	os.Exit(run(".", os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command in dir and returns the process exit code.
func run(dir string, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("portraits", flag.ContinueOnError)
	flags.SetOutput(stderr)
	debugFlag := flags.Bool("debug", false, "Log crop and resize details")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() != 0 {
		fmt.Fprintf(stderr, "Usage: %s [-debug]\n", flags.Name())
		return 1
	}

	if *debugFlag {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if _, err := portrait.NewBatch(dir, stdout).Run(); err != nil {
		return fatal(stderr, err)
	}
	return 0
}

func fatal(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, "fatal: "+err.Error())
	return 1
}
