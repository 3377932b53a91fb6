/*
Package app contains tools to assemble a request processing pipeline out of
decorators and a final handler, as well as the decorators that most pipelines
want to use.

	h := app.ChainDecorators(
		app.NewLogging(),
		app.NewRecovery(),
		migration.NewDecorator(engine),
	).WithHandler(fulfillment)
*/
package app
