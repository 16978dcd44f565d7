// Package events carries tweet lifecycle events from the tweet service to
// optional sinks (a RabbitMQ queue, the search index).
//
// Delivery is best effort. [Bus.Emit] never blocks the request that
// produced the event: when the buffer is full the event is dropped and a
// warning is logged. A worker (see internal/workers) drains the bus and
// hands every event to each configured [Sink].
package events
