package compat

import "go.uber.org/zap"

const (
	versionClass      = "android/os/Build$VERSION"
	versionCodesClass = "android/os/Build$VERSION_CODES"
	runningVersion    = "SDK_INT"
)

// FeatureAvailable reports whether the running host release is at least the
// release named by the given version-code constant (e.g. "O").
//
// Every lookup is probed: a host too old to expose the version metadata is
// treated conservatively as not having the feature, never as an error.
func (e *Env) FeatureAvailable(code string) (bool, error) {
	version, ok, err := e.TryFindClass(versionClass)
	if err != nil || !ok {
		return false, err
	}

	codes, ok, err := e.TryFindClass(versionCodesClass)
	if err != nil || !ok {
		return false, err
	}

	sdk, ok, err := e.TryGetStaticField(version, runningVersion, "I")
	if err != nil || !ok {
		return false, err
	}

	threshold, ok, err := e.TryGetStaticField(codes, code, "I")
	if err != nil || !ok {
		return false, err
	}

	running, err := sdk.Int()
	if err != nil {
		return false, err
	}
	want, err := threshold.Int()
	if err != nil {
		return false, err
	}

	Logger().Debug("feature gate evaluated",
		zap.String("code", code),
		zap.Int32("running", running),
		zap.Int32("threshold", want))

	return running >= want, nil
}
