package main

import (
	"flag"
	"fmt"
	"io"
)

func cmdIsMigration(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a JSON serialized request from the standard input and print "true" if it
carries migration data, "false" otherwise.
`)
		fl.PrintDefaults()
	}
	var (
		rulesFl = fl.String("rules", "", "Path to a YAML file declaring the migration rules.")
		flagFl  = fl.String("flag", "", "ID of the parameter holding the migration data. Overrides the rules.")
	)
	fl.Parse(args)

	engine, err := engineFlags{rulesPath: *rulesFl, flag: *flagFl}.newEngine(nil)
	if err != nil {
		return err
	}
	req, err := readRequest(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, engine.IsMigration(req))
	return err
}
