/*
Package connect defines the request model and the interfaces used to build a
request processing pipeline, such as handlers and decorators.

A request travels through a chain of decorators before reaching the final
handler. Each decorator may inspect the request, replace it with a modified
copy or stop the processing by returning an error. Requests are immutable by
convention: a decorator that wants to change a request must Clone it first.

We pass context through context.Context between decorators and handlers. To
do so, this package defines keys to store common information, such as the
logger. There should exist two functions for every XYZ of type T that we want
to support in Context:

  WithXYZ(context.Context, T) context.Context
  GetXYZ(context.Context) T
*/
package connect
