package notify

import (
	bridge "github.com/hostbind/droid-bridge"
	"github.com/hostbind/droid-bridge/compat"
)

const notificationManagerClass = "android/app/NotificationManager"

// notificationService resolves the host's notification delivery service for
// the environment's application context.
func notificationService(env *compat.Env) (bridge.Object, error) {
	ctxCls, err := env.FindClass("android/content/Context")
	if err != nil {
		return nil, err
	}

	nameVal, err := env.GetStaticField(ctxCls, "NOTIFICATION_SERVICE",
		"Ljava/lang/String;")
	if err != nil {
		return nil, err
	}
	name, err := nameVal.Object()
	if err != nil {
		return nil, err
	}

	svcVal, err := env.CallMethod(env.Context(), "getSystemService",
		"(Ljava/lang/String;)Ljava/lang/Object;", bridge.Obj(name))
	if err != nil {
		return nil, err
	}
	return svcVal.Object()
}

// Manager submits finalized notifications to the host's delivery service.
// The service is resolved once per Manager.
type Manager struct {
	env     *compat.Env
	service bridge.Object
}

// NewManager resolves the delivery service for the environment's context.
func NewManager(env *compat.Env) (*Manager, error) {
	service, err := notificationService(env)
	if err != nil {
		return nil, err
	}
	return &Manager{env: env, service: service}, nil
}

// Notify finalizes b and submits it under the caller-chosen id. The host
// replaces any earlier notification delivered under the same id; this layer
// imposes no id-uniqueness policy of its own.
func (m *Manager) Notify(b *Builder, id int32) error {
	notification, err := b.build()
	if err != nil {
		return err
	}

	_, err = m.env.CallMethod(m.service, "notify",
		"(ILandroid/app/Notification;)V",
		bridge.Int(id), bridge.Obj(notification))
	return err
}

// Cancel withdraws a previously delivered notification by id.
func (m *Manager) Cancel(id int32) error {
	_, err := m.env.CallMethod(m.service, "cancel", "(I)V", bridge.Int(id))
	return err
}

// CancelAll withdraws every notification this application has delivered.
func (m *Manager) CancelAll() error {
	_, err := m.env.CallMethod(m.service, "cancelAll", "()V")
	return err
}
