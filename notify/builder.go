package notify

import (
	bridge "github.com/hostbind/droid-bridge"
	"github.com/hostbind/droid-bridge/compat"
)

const builderClass = "android/app/Notification$Builder"

// Builder accumulates notification state host-side. Setters mutate the
// underlying host object and return the same Builder, so calls chain.
type Builder struct {
	env *compat.Env
	obj bridge.Object
}

// NewBuilder constructs a host notification builder. Hosts with channel
// support get the channel-aware constructor; older hosts fall back to the
// plain one and channelID is not transmitted.
func NewBuilder(env *compat.Env, channelID string) (*Builder, error) {
	cls, err := env.FindClass(builderClass)
	if err != nil {
		return nil, err
	}

	obj, err := compat.Select(
		func() (bridge.Object, bool, error) {
			id, err := env.NewString(channelID)
			if err != nil {
				return nil, false, err
			}
			return env.TryNewObject(cls,
				"(Landroid/content/Context;Ljava/lang/String;)V",
				bridge.Obj(env.Context()), bridge.Obj(id))
		},
		func() (bridge.Object, error) {
			return env.NewObject(cls, "(Landroid/content/Context;)V",
				bridge.Obj(env.Context()))
		},
	)
	if err != nil {
		return nil, err
	}

	return &Builder{env: env, obj: obj}, nil
}

// SetContentIntent attaches the intent fired when the notification is tapped.
func (b *Builder) SetContentIntent(intent bridge.Object) (*Builder, error) {
	_, err := b.env.CallMethod(b.obj, "setContentIntent",
		"(Landroid/app/PendingIntent;)Landroid/app/Notification$Builder;",
		bridge.Obj(intent))
	return b, err
}

// SetTitle sets the first line of the notification.
func (b *Builder) SetTitle(title string) (*Builder, error) {
	s, err := b.env.NewString(title)
	if err != nil {
		return b, err
	}
	_, err = b.env.CallMethod(b.obj, "setContentTitle",
		"(Ljava/lang/CharSequence;)Landroid/app/Notification$Builder;",
		bridge.Obj(s))
	return b, err
}

// SetText sets the second line of the notification.
func (b *Builder) SetText(text string) (*Builder, error) {
	s, err := b.env.NewString(text)
	if err != nil {
		return b, err
	}
	_, err = b.env.CallMethod(b.obj, "setContentText",
		"(Ljava/lang/CharSequence;)Landroid/app/Notification$Builder;",
		bridge.Obj(s))
	return b, err
}

// SetAutoCancel controls whether tapping dismisses the notification.
func (b *Builder) SetAutoCancel(autoCancel bool) (*Builder, error) {
	_, err := b.env.CallMethod(b.obj, "setAutoCancel",
		"(Z)Landroid/app/Notification$Builder;", bridge.Bool(autoCancel))
	return b, err
}

// SetSmallIcon sets the status-bar icon by resource identifier.
func (b *Builder) SetSmallIcon(icon int32) (*Builder, error) {
	_, err := b.env.CallMethod(b.obj, "setSmallIcon",
		"(I)Landroid/app/Notification$Builder;", bridge.Int(icon))
	return b, err
}

// build finalizes the host-side state into a notification object, preferring
// the newer finalize method and falling back to the older one.
func (b *Builder) build() (bridge.Object, error) {
	v, err := compat.Select(
		func() (bridge.Value, bool, error) {
			return b.env.TryCallMethod(b.obj, "build",
				"()Landroid/app/Notification;")
		},
		func() (bridge.Value, error) {
			return b.env.CallMethod(b.obj, "getNotification",
				"()Landroid/app/Notification;")
		},
	)
	if err != nil {
		return nil, err
	}
	return v.Object()
}
