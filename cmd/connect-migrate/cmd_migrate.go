package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/app"
	"github.com/cloudblue/connect-migration/migration"
)

func cmdMigrate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a JSON serialized request from the standard input and write the migrated
request to the standard output. A request that is not a migration is written
unchanged.

If the migration fails, nothing is written and the program exits with status 3.
`)
		fl.PrintDefaults()
	}
	var (
		rulesFl     = fl.String("rules", "", "Path to a YAML file declaring the migration rules.")
		flagFl      = fl.String("flag", "", "ID of the parameter holding the migration data. Overrides the rules.")
		serializeFl = fl.Bool("serialize", false, "Serialize values that are not strings to JSON instead of failing.")
		logLevelFl  = fl.String("log-level", "info", "Minimal level of logged messages: debug, info, error or none.")
	)
	fl.Parse(args)

	logger, err := newLogger(*logLevelFl)
	if err != nil {
		return err
	}
	engine, err := engineFlags{
		rulesPath: *rulesFl,
		flag:      *flagFl,
		serialize: *serializeFl,
	}.newEngine(logger)
	if err != nil {
		return err
	}

	req, err := readRequest(input)
	if err != nil {
		return err
	}

	handler := app.ChainDecorators(
		app.NewLogging(),
		app.NewRecovery(),
		migration.NewDecorator(engine),
	).WithHandler(connect.HandlerFunc(func(ctx context.Context, req *connect.Request) (*connect.Request, error) {
		return req, nil
	}))

	ctx := connect.WithLogger(context.Background(), logger)
	migrated, err := handler.Handle(ctx, req)
	if err != nil {
		return err
	}
	return writeRequest(output, migrated)
}
