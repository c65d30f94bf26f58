// Package main is a cli tool to check an html slide deck for overflowing content
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/slidecheck/slidecheck"
	"github.com/slidecheck/slidecheck/lib/defaults"
)

var out = flag.String("out", defaults.Out, "directory to write the slide screenshots to")
var serveHTTP = flag.Bool("serve", false, "load the deck over http instead of a file url")
var report = flag.String("json", "", "write the summary as json to this file")
var verbose = flag.Bool("v", false, "print a table of the overflowing elements")
var ver = flag.Bool("version", false, "display version")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [%s]\n", os.Args[0], slidecheck.DefaultDocument)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *ver {
		fmt.Println(defaults.Version)
		return
	}

	reap()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	doc := slidecheck.DefaultDocument
	if flag.NArg() > 0 {
		doc = flag.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := slidecheck.New().
		Context(ctx).
		Document(doc).
		OutDir(*out).
		Serve(*serveHTTP).
		Reporter(slidecheck.NewReporter(os.Stdout).Verbose(*verbose)).
		Run()
	if err != nil {
		return err
	}

	if *report != "" {
		return sum.Save(*report)
	}
	return nil
}
