// Package droidbridge defines the boundary between Go code and a versioned,
// externally-owned managed runtime that exposes a reflective call surface
// (class, field, method and constructor lookup by name and string signature).
//
// The API surface of such a host differs across releases. This library lets a
// caller behave correctly regardless of which release is present: symbols that
// do not exist on the running release degrade to fallbacks or no-ops, while
// genuine faults propagate with the original host exception preserved.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	droidbridge/         Root package with the Env boundary interface and Value union
//	├── compat/          Capability probe, feature detection, version-gated selection
//	├── resources/       Resource identifier lookup with memoization
//	├── notify/          Notification channels, builder and delivery facade
//	├── hostsim/         In-memory simulated host device for tests and the CLI
//	├── errors/          Structured error types for debugging
//	└── cmd/notifysim/   CLI and interactive TUI driving a simulated device
//
// # Quick Start
//
// Wrap a raw environment and post a notification:
//
//	env, err := compat.New(raw, appContext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = notify.CreateChannel(env, notify.Channel{
//	    ID:         "alerts",
//	    Name:       "Alerts",
//	    Importance: notify.ImportanceDefault,
//	})
//
//	b, err := notify.NewBuilder(env, "alerts")
//	b.SetTitle("T")
//	b.SetText("B")
//
//	mgr, err := notify.NewManager(env)
//	err = mgr.Notify(b, 42)
//
// # Fault Model
//
// A raw Env call that trips a host-side exception returns ErrExceptionPending
// and leaves the exception object in the context's single pending-fault slot.
// No further call may be issued on that context until the slot is cleared.
// The compat package owns this protocol; code built on compat never observes
// a pending fault.
//
// # Thread Safety
//
// An Env belongs to the thread that attached it to the host. Environments are
// not shared or migrated across threads, and every call blocks the calling
// thread until the host responds. There is no cancellation.
package droidbridge
