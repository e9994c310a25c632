package notify

import (
	bridge "github.com/hostbind/droid-bridge"
	"github.com/hostbind/droid-bridge/compat"
)

const intentClass = "android/content/Intent"

// NewIntent creates an intent targeting the application's own context class
// with the given activity flags applied.
func NewIntent(env *compat.Env, flags int32) (bridge.Object, error) {
	cls, err := env.FindClass(intentClass)
	if err != nil {
		return nil, err
	}

	ctxCls, err := env.GetObjectClass(env.Context())
	if err != nil {
		return nil, err
	}

	intent, err := env.NewObject(cls,
		"(Landroid/content/Context;Ljava/lang/Class;)V",
		bridge.Obj(env.Context()), bridge.ClassObj(ctxCls))
	if err != nil {
		return nil, err
	}

	if _, err := env.CallMethod(intent, "setFlags",
		"(I)Landroid/content/Intent;", bridge.Int(flags)); err != nil {
		return nil, err
	}

	return intent, nil
}

// ActivityPendingIntent wraps an intent in a pending intent that launches an
// activity when fired.
func ActivityPendingIntent(env *compat.Env, intent bridge.Object) (bridge.Object, error) {
	cls, err := env.FindClass("android/app/PendingIntent")
	if err != nil {
		return nil, err
	}

	v, err := env.CallStaticMethod(cls, "getActivity",
		"(Landroid/content/Context;ILandroid/content/Intent;I)Landroid/app/PendingIntent;",
		bridge.Obj(env.Context()), bridge.Int(0), bridge.Obj(intent), bridge.Int(0))
	if err != nil {
		return nil, err
	}
	return v.Object()
}
