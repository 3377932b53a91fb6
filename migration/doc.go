/*
Package migration implements a middleware step that rewrites request
parameters from a migration payload embedded in the request.

A request is considered a migration when its migration flag parameter
(by default "migration_info") holds a non empty value. That value is parsed
as JSON and every request parameter is resolved in order:

1. if a transformation is registered for the parameter ID, the
transformation result becomes the new parameter value,

2. otherwise, if the payload is a JSON object with a non null value under the
parameter ID, that value becomes the new parameter value,

3. otherwise the parameter is left unchanged.

Values that are not strings are serialized to compact JSON when serialization
is enabled. When it is disabled such a value fails the parameter.

A transformation can skip its parameter by returning Pass(...) or fail it by
returning Fail(...). Failed parameters do not stop the processing, but once all
parameters were visited the whole migration is aborted. An abort can also be
caused by an invalid payload or returned by any hook using Abort(...).

An aborted migration is handed to the OnFail hook. The migrated copy of the
request is returned as long as the hook returns no error. Without an OnFail
hook an error wrapping errors.ErrSkip is returned, telling the pipeline to
abandon the request.

Hooks and transformations receive the parsed payload, the request that is
being migrated, the configuration given to the engine and a logger:

	engine := migration.NewEngine(
		migration.WithLogger(logger),
		migration.WithTransformation("email", migration.TransformationFunc(
			func(ctx context.Context, in migration.Input) (interface{}, error) {
				email, ok := in.Payload.String("teamAdminEmail")
				if !ok {
					return nil, migration.Fail("missing admin email")
				}
				return strings.ToLower(email), nil
			})),
	)
	migrated, err := engine.Migrate(ctx, request)

The original request is never modified.
*/
package migration
