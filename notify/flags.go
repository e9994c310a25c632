package notify

import (
	"sync"

	"github.com/hostbind/droid-bridge/compat"
	"github.com/hostbind/droid-bridge/errors"
)

// ActivityFlags holds the host's activity-launch flag constants. Constants
// the host has carried since its first release are plain values; constants
// introduced later are pointers, nil when the running release predates them.
type ActivityFlags struct {
	BroughtToFront      int32
	ClearTask           *int32 // since release 11
	ClearTop            int32
	ClearWhenTaskReset  *int32 // since release 3, deprecated in 21
	ExcludeFromRecents  int32
	ForwardResult       int32
	LaunchedFromHistory int32
	LaunchAdjacent      *int32 // since release 24
	MatchExternal       *int32 // since release 28
	MultipleTask        int32
	NewDocument         *int32 // since release 21
	NewTask             int32
	NoAnimation         *int32 // since release 5
	NoHistory           int32
	NoUserAction        *int32 // since release 3
	PreviousIsTop       int32
	ReorderToFront      *int32 // since release 3
	RequireDefault      *int32 // since release 30
	RequireNonBrowser   *int32 // since release 30
	ResetTaskIfNeeded   int32
	RetainInRecents     *int32 // since release 21
	SingleTop           *int32
	TaskOnHome          *int32 // since release 11
}

type flagLoader struct {
	env *compat.Env
}

func (l flagLoader) load() (*ActivityFlags, error) {
	intent, err := l.env.FindClass(intentClass)
	if err != nil {
		return nil, err
	}

	var firstErr error

	opt := func(name string) *int32 {
		if firstErr != nil {
			return nil
		}
		v, ok, err := l.env.TryGetStaticField(intent, name, "I")
		if err != nil {
			firstErr = err
			return nil
		}
		if !ok {
			return nil
		}
		n, err := v.Int()
		if err != nil {
			firstErr = err
			return nil
		}
		return &n
	}

	// A required flag probing absent means the assumption that it is
	// foundational was wrong for this host release. The bag must not be
	// produced partially populated.
	req := func(name string) int32 {
		p := opt(name)
		if p == nil {
			if firstErr == nil {
				firstErr = errors.FatalInit(intentClass+"."+name, nil)
			}
			return 0
		}
		return *p
	}

	flags := &ActivityFlags{
		BroughtToFront:      req("FLAG_ACTIVITY_BROUGHT_TO_FRONT"),
		ClearTask:           opt("FLAG_ACTIVITY_CLEAR_TASK"),
		ClearTop:            req("FLAG_ACTIVITY_CLEAR_TOP"),
		ClearWhenTaskReset:  opt("FLAG_ACTIVITY_CLEAR_WHEN_TASK_RESET"),
		ExcludeFromRecents:  req("FLAG_ACTIVITY_EXCLUDE_FROM_RECENTS"),
		ForwardResult:       req("FLAG_ACTIVITY_FORWARD_RESULT"),
		LaunchedFromHistory: req("FLAG_ACTIVITY_LAUNCHED_FROM_HISTORY"),
		LaunchAdjacent:      opt("FLAG_ACTIVITY_LAUNCH_ADJACENT"),
		MatchExternal:       opt("FLAG_ACTIVITY_MATCH_EXTERNAL"),
		MultipleTask:        req("FLAG_ACTIVITY_MULTIPLE_TASK"),
		NewDocument:         opt("FLAG_ACTIVITY_NEW_DOCUMENT"),
		NewTask:             req("FLAG_ACTIVITY_NEW_TASK"),
		NoAnimation:         opt("FLAG_ACTIVITY_NO_ANIMATION"),
		NoHistory:           req("FLAG_ACTIVITY_NO_HISTORY"),
		NoUserAction:        opt("FLAG_ACTIVITY_NO_USER_ACTION"),
		PreviousIsTop:       req("FLAG_ACTIVITY_PREVIOUS_IS_TOP"),
		ReorderToFront:      opt("FLAG_ACTIVITY_REORDER_TO_FRONT"),
		RequireDefault:      opt("FLAG_ACTIVITY_REQUIRE_DEFAULT"),
		RequireNonBrowser:   opt("FLAG_ACTIVITY_REQUIRE_NON_BROWSER"),
		ResetTaskIfNeeded:   req("FLAG_ACTIVITY_RESET_TASK_IF_NEEDED"),
		RetainInRecents:     opt("FLAG_ACTIVITY_RETAIN_IN_RECENTS"),
		SingleTop:           opt("FLAG_ACTIVITY_SINGLE_TOP"),
		TaskOnHome:          opt("FLAG_ACTIVITY_TASK_ON_HOME"),
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return flags, nil
}

var (
	flagsOnce sync.Once
	flags     *ActivityFlags
	flagsErr  error
)

// LoadActivityFlags resolves the activity flag constants once for the whole
// process and returns the memoized bag thereafter, including a memoized
// error. First use must be externally serialized with respect to other first
// uses; after that the bag is read-only.
func LoadActivityFlags(env *compat.Env) (*ActivityFlags, error) {
	flagsOnce.Do(func() {
		flags, flagsErr = flagLoader{env: env}.load()
	})
	return flags, flagsErr
}
