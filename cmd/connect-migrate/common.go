package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/migration"
	"github.com/cloudblue/connect-migration/migration/rules"
	"github.com/google/uuid"
	"github.com/tendermint/tendermint/libs/log"
)

// logOutput is where all log messages are written to.
var logOutput io.Writer = os.Stderr

// newLogger returns a logger writing messages of at least given level.
func newLogger(level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", err)
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(logOutput)), opt), nil
}

// readRequest decodes a single request from given input. A request without
// an ID is given a random one, so that all log messages can be correlated.
func readRequest(input io.Reader) (*connect.Request, error) {
	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("cannot read request: %s", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no input data")
	}
	var req connect.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("cannot deserialize request: %s", err)
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	return &req, nil
}

// writeRequest writes indented JSON representation of given request.
func writeRequest(output io.Writer, req *connect.Request) error {
	pretty, err := json.MarshalIndent(req, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s\n", pretty)
	return err
}

// engineFlags holds the command line flags configuring a migration engine.
type engineFlags struct {
	rulesPath string
	flag      string
	serialize bool
}

// newEngine returns an engine configured with the rules file, if any, and
// command line flags. Flags take precedence over rules.
func (f engineFlags) newEngine(logger log.Logger) (*migration.Engine, error) {
	e := migration.NewEngine(migration.WithLogger(logger))
	if f.rulesPath != "" {
		rs, err := rules.LoadFile(f.rulesPath)
		if err != nil {
			return nil, fmt.Errorf("cannot load rules: %s", err)
		}
		rs.Apply(e)
	}
	if f.flag != "" {
		e.SetMigrationFlag(f.flag)
	}
	if f.serialize {
		e.SetSerialize(true)
	}
	return e, nil
}
