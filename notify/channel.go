package notify

import (
	"go.uber.org/zap"

	bridge "github.com/hostbind/droid-bridge"
	"github.com/hostbind/droid-bridge/compat"
)

// channelThreshold is the version-code constant naming the first host
// release with notification channels.
const channelThreshold = "O"

// Channel describes a notification channel before registration. The host
// persists registered channels; this layer does not.
type Channel struct {
	// ID is caller-supplied and must be stable across runs.
	ID   string
	Name string
	// Description is optional; empty means unset.
	Description string
	Importance  Importance
}

// CreateChannel registers ch with the host. On releases without channel
// support this is a no-op returning nil: callers must not assume a channel
// object was actually created.
func CreateChannel(env *compat.Env, ch Channel) error {
	ok, err := env.FeatureAvailable(channelThreshold)
	if err != nil {
		return err
	}
	if !ok {
		compat.Logger().Debug("channels unavailable, registration skipped",
			zap.String("channel", ch.ID))
		return nil
	}

	importance, err := ch.Importance.HostValue(env)
	if err != nil {
		return err
	}

	id, err := env.NewString(ch.ID)
	if err != nil {
		return err
	}
	name, err := env.NewString(ch.Name)
	if err != nil {
		return err
	}

	cls, err := env.FindClass("android/app/NotificationChannel")
	if err != nil {
		return err
	}
	channel, err := env.NewObject(cls,
		"(Ljava/lang/String;Ljava/lang/CharSequence;I)V",
		bridge.Obj(id), bridge.Obj(name), bridge.Int(importance))
	if err != nil {
		return err
	}

	if ch.Description != "" {
		desc, err := env.NewString(ch.Description)
		if err != nil {
			return err
		}
		if _, err := env.CallMethod(channel, "setDescription",
			"(Ljava/lang/String;)V", bridge.Obj(desc)); err != nil {
			return err
		}
	}

	service, err := notificationService(env)
	if err != nil {
		return err
	}
	_, err = env.CallMethod(service, "createNotificationChannel",
		"(Landroid/app/NotificationChannel;)V", bridge.Obj(channel))
	return err
}
