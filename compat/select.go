package compat

// Select runs a probed construction strategy and falls back to a simpler
// one only when the richer strategy's symbol is confirmed absent.
//
// rich is attempted first. A real failure propagates immediately and base
// never runs; falling back on an unrelated error would mask it. When rich
// reports absence, base runs exactly once and its result, success or
// failure, is the result of the whole selection.
func Select[T any](rich func() (T, bool, error), base func() (T, error)) (T, error) {
	v, ok, err := rich()
	if err != nil {
		var zero T
		return zero, err
	}
	if ok {
		return v, nil
	}
	return base()
}
