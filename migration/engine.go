package migration

import (
	"sync"

	"github.com/tendermint/tendermint/libs/log"
)

// DefaultMigrationFlag is the ID of the parameter that carries the migration
// payload, unless configured otherwise.
const DefaultMigrationFlag = "migration_info"

// Engine migrates requests. Its configuration can be changed at any time and
// is safe for concurrent use. Each migration uses a snapshot of the
// configuration taken when the migration starts.
type Engine struct {
	mu sync.RWMutex

	migrationFlag   string
	serialize       bool
	transformations map[string]Transformation

	validation Hook
	onSuccess  Hook
	onFail     Hook

	logger log.Logger
	config interface{}
}

// Option configures an Engine.
type Option func(*Engine)

// NewEngine returns an engine configured with given options. By default
// "migration_info" parameter triggers the migration, serialization is
// disabled and there are no transformations and hooks.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		migrationFlag:   DefaultMigrationFlag,
		transformations: make(map[string]Transformation),
	}
	for _, fn := range opts {
		fn(e)
	}
	return e
}

// WithMigrationFlag sets the ID of the parameter that carries the migration
// payload.
func WithMigrationFlag(flag string) Option {
	return func(e *Engine) { e.migrationFlag = flag }
}

// WithSerialize enables or disables serialization of non string values.
func WithSerialize(serialize bool) Option {
	return func(e *Engine) { e.serialize = serialize }
}

// WithTransformations registers all given transformations. Already
// registered transformations are kept unless overwritten.
func WithTransformations(ts map[string]Transformation) Option {
	return func(e *Engine) {
		for id, t := range ts {
			e.transformations[id] = t
		}
	}
}

// WithTransformation registers a transformation for given parameter ID.
func WithTransformation(paramID string, t Transformation) Option {
	return func(e *Engine) { e.transformations[paramID] = t }
}

// WithValidation sets the hook called before any parameter is migrated.
func WithValidation(h Hook) Option {
	return func(e *Engine) { e.validation = h }
}

// WithOnSuccess sets the hook called after a successful migration.
func WithOnSuccess(h Hook) Option {
	return func(e *Engine) { e.onSuccess = h }
}

// WithOnFail sets the hook called when the migration is aborted.
func WithOnFail(h Hook) Option {
	return func(e *Engine) { e.onFail = h }
}

// WithLogger sets the logger. When no logger is set, the logger stored in
// the context given to Migrate is used.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithConfig sets a value that is passed to all hooks and transformations
// unchanged.
func WithConfig(config interface{}) Option {
	return func(e *Engine) { e.config = config }
}

func (e *Engine) SetMigrationFlag(flag string) {
	e.mu.Lock()
	e.migrationFlag = flag
	e.mu.Unlock()
}

func (e *Engine) MigrationFlag() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.migrationFlag
}

func (e *Engine) SetSerialize(serialize bool) {
	e.mu.Lock()
	e.serialize = serialize
	e.mu.Unlock()
}

func (e *Engine) Serialize() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.serialize
}

// SetTransformations replaces all registered transformations.
func (e *Engine) SetTransformations(ts map[string]Transformation) {
	cp := make(map[string]Transformation, len(ts))
	for id, t := range ts {
		cp[id] = t
	}
	e.mu.Lock()
	e.transformations = cp
	e.mu.Unlock()
}

// Transformations returns a copy of all registered transformations.
func (e *Engine) Transformations() map[string]Transformation {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyTransformations(e.transformations)
}

// SetTransformation registers a transformation for given parameter ID,
// replacing the previous one.
func (e *Engine) SetTransformation(paramID string, t Transformation) {
	e.mu.Lock()
	e.transformations[paramID] = t
	e.mu.Unlock()
}

// Transformation returns the transformation registered for given parameter
// ID.
func (e *Engine) Transformation(paramID string) (Transformation, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, ok := e.transformations[paramID]
	return t, ok
}

// UnsetTransformation removes the transformation registered for given
// parameter ID. It returns true if after the call no transformation is
// registered for that ID.
func (e *Engine) UnsetTransformation(paramID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.transformations, paramID)
	_, ok := e.transformations[paramID]
	return !ok
}

func (e *Engine) SetValidation(h Hook) {
	e.mu.Lock()
	e.validation = h
	e.mu.Unlock()
}

func (e *Engine) Validation() Hook {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.validation
}

func (e *Engine) SetOnSuccess(h Hook) {
	e.mu.Lock()
	e.onSuccess = h
	e.mu.Unlock()
}

func (e *Engine) OnSuccess() Hook {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.onSuccess
}

func (e *Engine) SetOnFail(h Hook) {
	e.mu.Lock()
	e.onFail = h
	e.mu.Unlock()
}

func (e *Engine) OnFail() Hook {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.onFail
}

func (e *Engine) SetLogger(l log.Logger) {
	e.mu.Lock()
	e.logger = l
	e.mu.Unlock()
}

// Logger returns the configured logger or nil.
func (e *Engine) Logger() log.Logger {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.logger
}

func (e *Engine) SetConfig(config interface{}) {
	e.mu.Lock()
	e.config = config
	e.mu.Unlock()
}

func (e *Engine) Config() interface{} {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.config
}

// settings is a snapshot of the engine configuration used by a single
// migration.
type settings struct {
	migrationFlag   string
	serialize       bool
	transformations map[string]Transformation
	validation      Hook
	onSuccess       Hook
	onFail          Hook
	logger          log.Logger
	config          interface{}
}

func (e *Engine) snapshot() settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return settings{
		migrationFlag:   e.migrationFlag,
		serialize:       e.serialize,
		transformations: copyTransformations(e.transformations),
		validation:      e.validation,
		onSuccess:       e.onSuccess,
		onFail:          e.onFail,
		logger:          e.logger,
		config:          e.config,
	}
}

func copyTransformations(ts map[string]Transformation) map[string]Transformation {
	cp := make(map[string]Transformation, len(ts))
	for id, t := range ts {
		cp[id] = t
	}
	return cp
}
