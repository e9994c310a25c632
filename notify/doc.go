// Package notify builds and delivers host notifications across host
// releases with divergent notification APIs.
//
// The flow is linear: register a channel (a no-op on hosts without
// channels), construct a Builder, chain setters, then hand the builder to a
// Manager for delivery. Construction and finalization each have a newer and
// an older host strategy; the right one is picked at runtime through the
// compat probe, falling back only on confirmed absence.
package notify
