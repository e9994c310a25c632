package notify

import (
	"github.com/hostbind/droid-bridge/compat"
)

// Importance is the interruption level of a notification channel.
type Importance int

const (
	ImportanceUnspecified Importance = iota
	ImportanceNone
	ImportanceMin
	ImportanceLow
	ImportanceDefault
	ImportanceHigh
	ImportanceMax
)

func (i Importance) constName() string {
	switch i {
	case ImportanceDefault:
		return "IMPORTANCE_DEFAULT"
	case ImportanceHigh:
		return "IMPORTANCE_HIGH"
	case ImportanceLow:
		return "IMPORTANCE_LOW"
	case ImportanceMax:
		return "IMPORTANCE_MAX"
	case ImportanceMin:
		return "IMPORTANCE_MIN"
	case ImportanceNone:
		return "IMPORTANCE_NONE"
	default:
		return "IMPORTANCE_UNSPECIFIED"
	}
}

func (i Importance) String() string { return i.constName() }

// HostValue resolves the host's integer constant for this importance level.
// The constants exist from the same release as channels themselves, so call
// sites guard with the channel feature gate rather than probing here.
func (i Importance) HostValue(env *compat.Env) (int32, error) {
	cls, err := env.FindClass(notificationManagerClass)
	if err != nil {
		return 0, err
	}
	v, err := env.GetStaticField(cls, i.constName(), "I")
	if err != nil {
		return 0, err
	}
	return v.Int()
}
