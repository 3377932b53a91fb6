package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudblue/connect-migration/errors"
	"github.com/cloudblue/connect-migration/migration"
	"github.com/theory/jsonpath"
)

// Letter case normalizations.
const (
	CaseLower = "lower"
	CaseUpper = "upper"
)

// Policies applied when a path matches nothing.
const (
	MissingPass  = "pass"
	MissingFail  = "fail"
	MissingAbort = "abort"
)

// Rule is a transformation selecting the parameter value from the migration
// payload.
type Rule struct {
	Path    string  `yaml:"path"`
	Case    string  `yaml:"case,omitempty"`
	Trim    bool    `yaml:"trim,omitempty"`
	Join    *string `yaml:"join,omitempty"`
	Default *string `yaml:"default,omitempty"`
	Missing string  `yaml:"missing,omitempty"`

	path *jsonpath.Path
}

var _ migration.Transformation = (*Rule)(nil)

func (r *Rule) compile() error {
	var errs error
	if r.Path == "" {
		errs = errors.AppendField(errs, "Path", errors.ErrEmpty)
	} else if p, err := jsonpath.Parse(r.Path); err != nil {
		errs = errors.AppendField(errs, "Path", errors.Wrap(errors.ErrInput, err.Error()))
	} else {
		r.path = p
	}

	switch r.Case {
	case "", CaseLower, CaseUpper:
	default:
		errs = errors.AppendField(errs, "Case", errors.Wrapf(errors.ErrInput, "unknown case %q", r.Case))
	}

	switch r.Missing {
	case "", MissingPass, MissingFail, MissingAbort:
	default:
		errs = errors.AppendField(errs, "Missing", errors.Wrapf(errors.ErrInput, "unknown policy %q", r.Missing))
	}
	return errs
}

// Transform implements migration.Transformation interface.
func (r *Rule) Transform(ctx context.Context, in migration.Input) (interface{}, error) {
	if r.path == nil {
		return nil, errors.Wrapf(errors.ErrState, "rule %q is not compiled", r.Path)
	}

	var nodes []interface{}
	for _, n := range r.path.Select(in.Payload.Data()) {
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	if in.Logger != nil {
		in.Logger.Debug("payload selected", "path", r.Path, "matches", len(nodes))
	}

	switch len(nodes) {
	case 0:
		return r.missing()
	case 1:
		if r.Join == nil {
			return r.normalize(nodes[0]), nil
		}
	}

	if r.Join == nil {
		return nodes, nil
	}
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		s, err := text(n)
		if err != nil {
			return nil, migration.Fail("cannot join %s: %s", r.Path, err)
		}
		parts[i] = s
	}
	return r.normalize(strings.Join(parts, *r.Join)), nil
}

func (r *Rule) missing() (interface{}, error) {
	if r.Default != nil {
		return r.normalize(*r.Default), nil
	}
	switch r.Missing {
	case MissingFail:
		return nil, migration.Fail("no value found at %s", r.Path)
	case MissingAbort:
		return nil, migration.Abort("no value found at %s", r.Path)
	default:
		return nil, migration.Pass(fmt.Sprintf("no value found at %s", r.Path))
	}
}

// normalize applies the string normalizations to a string value. Any
// other value is returned unchanged.
func (r *Rule) normalize(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if r.Trim {
		s = strings.TrimSpace(s)
	}
	switch r.Case {
	case CaseLower:
		s = strings.ToLower(s)
	case CaseUpper:
		s = strings.ToUpper(s)
	}
	return s
}

// text returns the textual form of a payload node. Scalars are used as they
// are, structures are represented as JSON.
func text(v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return fmt.Sprint(v), nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
