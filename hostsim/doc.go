// Package hostsim provides an in-memory host device implementing the
// droidbridge.Env boundary, for tests and the notifysim CLI.
//
// A Device exposes an Android-shaped class catalog gated by a configurable
// API level: symbols introduced after the device's level do not resolve and
// raise the same throwable families a real host would. The device keeps the
// host's single pending-fault slot honest: issuing any call while a fault
// is pending fails hard, so a missed clear in the layers above surfaces
// immediately instead of corrupting later calls.
//
// Devices record registered channels, delivered notifications and
// per-method call counts, and support observers for delivery events.
// Behavior is configured through a Profile, loadable from YAML.
package hostsim
