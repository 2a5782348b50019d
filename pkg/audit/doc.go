// Package audit records authorization outcomes for later review.
//
// The engine reports every grant, denial, and system-owner bypass to a
// Sink. Emission is fire-and-forget: a failing sink is logged and
// ignored, because the security decision must never depend on the audit
// trail being writable.
//
// Three sinks ship with the package: SlogSink writes events to a
// structured logger, StreamSink appends them to a capped Redis stream
// for the operational audit feed, and NoopSink discards them (tests,
// local tooling). Fan out to several destinations with MultiSink.
package audit
