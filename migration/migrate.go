package migration

import (
	"context"
	"strings"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// IsMigration returns true if given request carries migration data, that is
// the migration flag parameter exists and its value is not empty.
func (e *Engine) IsMigration(req *connect.Request) bool {
	return isMigration(req, e.MigrationFlag())
}

func isMigration(req *connect.Request, flag string) bool {
	if req == nil {
		return false
	}
	v, ok := req.Asset.Params.Get(flag)
	return ok && !isEmpty(v)
}

// isEmpty follows the host emptiness test, where "0" is empty as well.
func isEmpty(v string) bool {
	return v == "" || v == "0"
}

// Migrate returns a copy of given request with parameters populated from the
// migration data. If the request is not a migration, the same request is
// returned.
//
// When the migration is aborted and no OnFail hook is configured, an error
// wrapping errors.ErrSkip is returned. Errors returned by hooks and
// transformations, other than those created with Pass, Fail and Abort, are
// returned unchanged.
//
// Given request is never modified.
func (e *Engine) Migrate(ctx context.Context, req *connect.Request) (*connect.Request, error) {
	s := e.snapshot()
	if !isMigration(req, s.migrationFlag) {
		return req, nil
	}
	if s.logger == nil {
		s.logger = connect.GetLogger(ctx)
	}

	p := &pass{
		settings: s,
		req:      req.Clone(),
	}
	p.logger = s.logger.With("module", "migration", "request", p.req.ID)

	if err := p.run(ctx); err != nil {
		if !errors.ErrAbort.Is(err) {
			return nil, err
		}
		return p.abort(ctx, err)
	}
	return p.req, nil
}

// pass holds the state of a single migration.
type pass struct {
	settings

	req     *connect.Request
	logger  log.Logger
	payload Payload
	report  report
}

func (p *pass) input(err error) Input {
	return Input{
		Payload: p.payload,
		Request: p.req,
		Config:  p.config,
		Logger:  p.logger,
		Err:     err,
	}
}

func (p *pass) run(ctx context.Context) error {
	p.logger.Info("running migration operations")

	raw, _ := p.req.Asset.Params.Get(p.migrationFlag)
	p.logger.Debug("migration data", "param", p.migrationFlag, "data", raw)

	payload, err := ParsePayload(raw)
	if err != nil {
		return errors.Wrapf(errors.ErrAbort, "unable to parse %s parameter: %s", p.migrationFlag, err)
	}
	p.payload = payload

	if p.validation != nil {
		if err := p.validation.Run(ctx, p.input(nil)); err != nil {
			return err
		}
	}
	p.logger.Debug("migration data parsed correctly", "param", p.migrationFlag)

	for i := range p.req.Asset.Params {
		param := &p.req.Asset.Params[i]
		switch err := p.migrateParam(ctx, param); {
		case err == nil:
			p.report.succeed(param.ID)
		case errors.ErrParamPass.Is(err):
			p.logger.Error("bypassing parameter transformation", "param", param.ID, "reason", err.Error())
			p.report.bypass(param.ID)
		case errors.ErrParamFail.Is(err):
			p.logger.Error("parameter migration failed", "param", param.ID, "err", err.Error())
			p.report.fail(param.ID, err)
		default:
			return err
		}
	}

	if err := p.report.err(); err != nil {
		return err
	}

	p.logger.Info("parameters processed correctly",
		"success", len(p.report.success),
		"processed", len(p.report.processed),
		"params", strings.Join(p.report.success, ", "))

	if p.onSuccess != nil {
		if err := p.onSuccess.Run(ctx, p.input(nil)); err != nil {
			return err
		}
	}
	return nil
}

// migrateParam resolves the new value of a single parameter. A registered
// transformation takes precedence over the value found in the payload.
func (p *pass) migrateParam(ctx context.Context, param *connect.Param) error {
	if t, ok := p.transformations[param.ID]; ok && t != nil {
		p.logger.Info("running transformation", "param", param.ID)
		v, err := t.Transform(ctx, p.input(nil))
		if err != nil {
			if errors.ErrParamFail.Is(err) {
				return errors.Field(param.ID, err, "transformation failed")
			}
			return err
		}
		return p.assign(param, v)
	}

	v, ok := p.payload.Get(param.ID)
	if !ok {
		return nil
	}
	return p.assign(param, v)
}

func (p *pass) assign(param *connect.Param, v interface{}) error {
	value, err := p.value(param.ID, v)
	if err != nil {
		return err
	}
	param.Value = value
	return nil
}

// value applies the serialize policy to a value that is to be assigned to
// a parameter.
func (s settings) value(paramID string, v interface{}) (string, error) {
	if str, ok := v.(string); ok {
		return str, nil
	}
	if !s.serialize {
		return "", errors.Field(paramID, errors.ErrParamFail,
			"invalid parameter type, must be string, given %s", typeName(v))
	}
	str, err := serialize(v)
	if err != nil {
		return "", errors.Field(paramID, errors.ErrParamFail,
			"cannot serialize %s value: %s", typeName(v), err)
	}
	return str, nil
}

func (p *pass) abort(ctx context.Context, reason error) (*connect.Request, error) {
	p.logger.Error("migration aborted", "code", errors.Code(reason), "err", reason.Error())

	if p.onFail == nil {
		return nil, errors.Wrap(errors.ErrSkip, "migration failed")
	}
	if err := p.onFail.Run(ctx, p.input(reason)); err != nil {
		return nil, err
	}
	return p.req, nil
}
