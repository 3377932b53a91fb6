package rules

import (
	"io"
	"os"

	"github.com/cloudblue/connect-migration/errors"
	"github.com/cloudblue/connect-migration/migration"
	"github.com/goccy/go-yaml"
)

// Rules is a declarative engine configuration.
type Rules struct {
	MigrationFlag   string           `yaml:"migration_flag,omitempty"`
	Serialize       bool             `yaml:"serialize,omitempty"`
	Transformations map[string]*Rule `yaml:"transformations,omitempty"`
}

// Load decodes and compiles rules from given YAML document. Unknown
// attributes are rejected.
func Load(r io.Reader) (*Rules, error) {
	var rs Rules
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(&rs); err != nil && err != io.EOF {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode rules: %s", err)
	}
	if err := rs.Compile(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// LoadFile reads rules from the file at given path.
func LoadFile(path string) (*Rules, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "cannot open rules file: %s", err)
	}
	defer fd.Close()

	rs, err := Load(fd)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return rs, nil
}

// Compile validates all rules and prepares their JSONPath expressions. It
// must be called before rules that were not created by Load are used.
func (rs *Rules) Compile() error {
	var errs error
	if err := rs.Configuration().Validate(); err != nil {
		errs = errors.Append(errs, err)
	}
	for id, r := range rs.Transformations {
		if r == nil {
			errs = errors.AppendField(errs, id, errors.Wrap(errors.ErrEmpty, "rule"))
			continue
		}
		errs = errors.AppendField(errs, id, r.compile())
	}
	return errs
}

// Configuration returns the engine configuration declared by the rules.
// A missing migration flag is replaced with the default one.
func (rs *Rules) Configuration() migration.Configuration {
	conf := migration.DefaultConfiguration()
	if rs.MigrationFlag != "" {
		conf.MigrationFlag = rs.MigrationFlag
	}
	conf.Serialize = rs.Serialize
	return conf
}

// Options returns engine options applying the rules.
func (rs *Rules) Options() []migration.Option {
	conf := rs.Configuration()
	opts := conf.Options()
	for id, r := range rs.Transformations {
		opts = append(opts, migration.WithTransformation(id, r))
	}
	return opts
}

// Apply configures given engine with the rules. Transformations already
// registered for other parameters are kept.
func (rs *Rules) Apply(e *migration.Engine) {
	conf := rs.Configuration()
	e.SetMigrationFlag(conf.MigrationFlag)
	e.SetSerialize(conf.Serialize)
	for id, r := range rs.Transformations {
		e.SetTransformation(id, r)
	}
}
