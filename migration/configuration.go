package migration

import (
	"strings"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/errors"
)

// Configuration holds the engine settings that can be declared outside of
// the code.
type Configuration struct {
	MigrationFlag string `json:"migration_flag" yaml:"migration_flag"`
	Serialize     bool   `json:"serialize" yaml:"serialize"`
}

// DefaultConfiguration returns the configuration of an engine created
// without any option.
func DefaultConfiguration() Configuration {
	return Configuration{MigrationFlag: DefaultMigrationFlag}
}

func (c *Configuration) Validate() error {
	var errs error
	switch {
	case c.MigrationFlag == "":
		errs = errors.AppendField(errs, "MigrationFlag", errors.ErrEmpty)
	case strings.TrimSpace(c.MigrationFlag) != c.MigrationFlag:
		errs = errors.AppendField(errs, "MigrationFlag",
			errors.Wrap(errors.ErrInput, "must not contain leading or trailing spaces"))
	}
	return errs
}

// Options returns engine options that apply this configuration.
func (c Configuration) Options() []Option {
	return []Option{
		WithMigrationFlag(c.MigrationFlag),
		WithSerialize(c.Serialize),
	}
}

// LoadConfiguration reads the configuration stored under the "migration" key
// of given options. Missing attributes use default values.
func LoadConfiguration(opts connect.Options) (Configuration, error) {
	conf := DefaultConfiguration()
	if err := opts.ReadOptions("migration", &conf); err != nil {
		return conf, errors.Wrap(err, "read migration options")
	}
	if err := conf.Validate(); err != nil {
		return conf, errors.Wrap(err, "invalid migration configuration")
	}
	return conf, nil
}
