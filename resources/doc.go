// Package resources resolves application resource names to the integer
// identifiers the host hands out, memoizing results to avoid repeated
// cross-boundary round-trips.
package resources
