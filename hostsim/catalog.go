package hostsim

import (
	bridge "github.com/hostbind/droid-bridge"
)

// Class names used across the package.
const (
	objectClass    = "java/lang/Object"
	stringClass    = "java/lang/String"
	classClass     = "java/lang/Class"
	throwableClass = "java/lang/Throwable"

	classNotFoundException = "java/lang/ClassNotFoundException"
	noSuchFieldException   = "java/lang/NoSuchFieldException"
	noSuchMethodException  = "java/lang/NoSuchMethodException"
	noClassDefFoundError   = "java/lang/NoClassDefFoundError"
	noSuchFieldError       = "java/lang/NoSuchFieldError"
	noSuchMethodError      = "java/lang/NoSuchMethodError"

	contextClass             = "android/content/Context"
	activityClass            = "android/app/NativeActivity"
	resourcesClass           = "android/content/res/Resources"
	intentClass              = "android/content/Intent"
	pendingIntentClass       = "android/app/PendingIntent"
	notificationClass        = "android/app/Notification"
	builderClass             = "android/app/Notification$Builder"
	notificationManagerClass = "android/app/NotificationManager"
	notificationChannelClass = "android/app/NotificationChannel"
	versionClass             = "android/os/Build$VERSION"
	versionCodesClass        = "android/os/Build$VERSION_CODES"
)

// buildCatalog assembles the simulated class table. Introduction levels
// mirror the host platform's documented API history; the device decides at
// call time which of these are visible.
func buildCatalog() map[string]*class {
	classes := make(map[string]*class)
	add := func(c *class) *class {
		classes[c.name] = c
		return c
	}

	obj := add(newClass(objectClass, nil, 1))
	add(newClass(stringClass, obj, 1))
	add(newClass(classClass, obj, 1))

	// Throwable families. The severe Error forms descend from Throwable via
	// separate branches, so instance-of tests exercise real chains.
	throwable := add(newClass(throwableClass, obj, 1))
	exception := add(newClass("java/lang/Exception", throwable, 1))
	add(newClass(classNotFoundException, exception, 1))
	add(newClass(noSuchFieldException, exception, 1))
	add(newClass(noSuchMethodException, exception, 1))

	runtimeEx := add(newClass("java/lang/RuntimeException", exception, 1))
	add(newClass("java/lang/IllegalStateException", runtimeEx, 1))
	add(newClass("java/lang/SecurityException", runtimeEx, 1))

	errCls := add(newClass("java/lang/Error", throwable, 1))
	linkage := add(newClass("java/lang/LinkageError", errCls, 1))
	add(newClass(noClassDefFoundError, linkage, 1))
	incompat := add(newClass("java/lang/IncompatibleClassChangeError", linkage, 1))
	add(newClass(noSuchFieldError, incompat, 1))
	add(newClass(noSuchMethodError, incompat, 1))

	// Context surface. The app context object is a NativeActivity whose
	// super chain ends at Context, where the shared methods live.
	context := add(newClass(contextClass, obj, 1))
	context.addStatic("NOTIFICATION_SERVICE", "Ljava/lang/String;", 1,
		func(d *Device) bridge.Value {
			return bridge.Obj(&object{class: d.classes[stringClass], str: "notification"})
		})
	context.addMethod("getResources", "()Landroid/content/res/Resources;", 1,
		func(d *Device, _ *object, _ []bridge.Value) (bridge.Value, error) {
			return bridge.Obj(&object{class: d.classes[resourcesClass]}), nil
		})
	context.addMethod("getPackageName", "()Ljava/lang/String;", 1,
		func(d *Device, _ *object, _ []bridge.Value) (bridge.Value, error) {
			return bridge.Obj(&object{class: d.classes[stringClass], str: d.pkg}), nil
		})
	context.addMethod("getSystemService", "(Ljava/lang/String;)Ljava/lang/Object;", 1,
		func(d *Device, _ *object, args []bridge.Value) (bridge.Value, error) {
			name, err := stringArg(args[0])
			if err != nil {
				return bridge.Void(), err
			}
			if name == "notification" {
				return bridge.Obj(d.service), nil
			}
			return bridge.Obj(nil), nil
		})
	add(newClass(activityClass, context, 1))

	resources := add(newClass(resourcesClass, obj, 1))
	resources.addMethod("getIdentifier",
		"(Ljava/lang/String;Ljava/lang/String;Ljava/lang/String;)I", 1,
		func(d *Device, _ *object, args []bridge.Value) (bridge.Value, error) {
			name, err := stringArg(args[0])
			if err != nil {
				return bridge.Void(), err
			}
			kind, err := stringArg(args[1])
			if err != nil {
				return bridge.Void(), err
			}
			// Unknown names resolve to 0, as on the real host.
			return bridge.Int(d.resourceIDs[resourceKey{name: name, kind: kind}]), nil
		})

	addIntent(add(newClass(intentClass, obj, 1)))

	pending := add(newClass(pendingIntentClass, obj, 1))
	pending.addMethod("getActivity",
		"(Landroid/content/Context;ILandroid/content/Intent;I)Landroid/app/PendingIntent;", 1,
		func(d *Device, _ *object, args []bridge.Value) (bridge.Value, error) {
			intent, err := objectArg(args[2])
			if err != nil {
				return bridge.Void(), err
			}
			po := &object{class: d.classes[pendingIntentClass], fields: map[string]bridge.Value{}}
			po.fields["intent"] = bridge.Obj(intent)
			return bridge.Obj(po), nil
		})

	notification := add(newClass(notificationClass, obj, 1))
	notification.addField("flags", "I", 1)
	notification.addField("visibility", "I", 21)

	addBuilder(add(newClass(builderClass, obj, 11)))
	addManager(add(newClass(notificationManagerClass, obj, 1)))
	addChannel(add(newClass(notificationChannelClass, obj, 26)))

	version := add(newClass(versionClass, obj, 1))
	version.addStatic("SDK_INT", "I", 4, func(d *Device) bridge.Value {
		return bridge.Int(d.api)
	})

	codes := add(newClass(versionCodesClass, obj, 4))
	for _, vc := range []struct {
		name   string
		value  int32
		minAPI int32
	}{
		{"BASE", 1, 4},
		{"CUPCAKE", 3, 4},
		{"HONEYCOMB", 11, 11},
		{"JELLY_BEAN", 16, 16},
		{"LOLLIPOP", 21, 21},
		{"N", 24, 24},
		{"O", 26, 26},
		{"P", 28, 28},
		{"Q", 29, 29},
		{"R", 30, 30},
	} {
		codes.addStaticInt(vc.name, vc.minAPI, vc.value)
	}

	return classes
}

func addIntent(intent *class) {
	for _, f := range []struct {
		name   string
		value  int32
		minAPI int32
	}{
		{"FLAG_ACTIVITY_BROUGHT_TO_FRONT", 0x00400000, 1},
		{"FLAG_ACTIVITY_CLEAR_TASK", 0x00008000, 11},
		{"FLAG_ACTIVITY_CLEAR_TOP", 0x04000000, 1},
		{"FLAG_ACTIVITY_CLEAR_WHEN_TASK_RESET", 0x00080000, 3},
		{"FLAG_ACTIVITY_EXCLUDE_FROM_RECENTS", 0x00800000, 1},
		{"FLAG_ACTIVITY_FORWARD_RESULT", 0x02000000, 1},
		{"FLAG_ACTIVITY_LAUNCHED_FROM_HISTORY", 0x00100000, 1},
		{"FLAG_ACTIVITY_LAUNCH_ADJACENT", 0x00001000, 24},
		{"FLAG_ACTIVITY_MATCH_EXTERNAL", 0x00000800, 28},
		{"FLAG_ACTIVITY_MULTIPLE_TASK", 0x08000000, 1},
		{"FLAG_ACTIVITY_NEW_DOCUMENT", 0x00080000, 21},
		{"FLAG_ACTIVITY_NEW_TASK", 0x10000000, 1},
		{"FLAG_ACTIVITY_NO_ANIMATION", 0x00010000, 5},
		{"FLAG_ACTIVITY_NO_HISTORY", 0x40000000, 1},
		{"FLAG_ACTIVITY_NO_USER_ACTION", 0x00040000, 3},
		{"FLAG_ACTIVITY_PREVIOUS_IS_TOP", 0x01000000, 1},
		{"FLAG_ACTIVITY_REORDER_TO_FRONT", 0x00020000, 3},
		{"FLAG_ACTIVITY_REQUIRE_DEFAULT", 0x00000200, 30},
		{"FLAG_ACTIVITY_REQUIRE_NON_BROWSER", 0x00000400, 30},
		{"FLAG_ACTIVITY_RESET_TASK_IF_NEEDED", 0x00200000, 1},
		{"FLAG_ACTIVITY_RETAIN_IN_RECENTS", 0x00002000, 21},
		{"FLAG_ACTIVITY_SINGLE_TOP", 0x20000000, 1},
		{"FLAG_ACTIVITY_TASK_ON_HOME", 0x00004000, 11},
	} {
		intent.addStaticInt(f.name, f.minAPI, f.value)
	}

	intent.addCtor("(Landroid/content/Context;Ljava/lang/Class;)V", 1,
		func(d *Device, _ []bridge.Value) (*object, error) {
			return &object{class: d.classes[intentClass], fields: map[string]bridge.Value{}}, nil
		})
	intent.addMethod("setFlags", "(I)Landroid/content/Intent;", 1,
		func(d *Device, recv *object, args []bridge.Value) (bridge.Value, error) {
			recv.fields["flags"] = args[0]
			return bridge.Obj(recv), nil
		})
}

func addBuilder(builder *class) {
	newBuilder := func(d *Device, channel string) *object {
		return &object{
			class: d.classes[builderClass],
			fields: map[string]bridge.Value{
				"channel": bridge.Obj(&object{class: d.classes[stringClass], str: channel}),
			},
		}
	}

	builder.addCtor("(Landroid/content/Context;Ljava/lang/String;)V", 26,
		func(d *Device, args []bridge.Value) (*object, error) {
			channel, err := stringArg(args[1])
			if err != nil {
				return nil, err
			}
			return newBuilder(d, channel), nil
		})
	builder.addCtor("(Landroid/content/Context;)V", 11,
		func(d *Device, _ []bridge.Value) (*object, error) {
			return newBuilder(d, ""), nil
		})

	setter := func(field, argSig string) {
		builder.addMethod("set"+field, "("+argSig+")Landroid/app/Notification$Builder;", 11,
			func(d *Device, recv *object, args []bridge.Value) (bridge.Value, error) {
				recv.fields[field] = args[0]
				return bridge.Obj(recv), nil
			})
	}
	setter("ContentIntent", "Landroid/app/PendingIntent;")
	setter("ContentTitle", "Ljava/lang/CharSequence;")
	setter("ContentText", "Ljava/lang/CharSequence;")
	setter("AutoCancel", "Z")
	setter("SmallIcon", "I")

	finalize := func(via string) func(d *Device, recv *object, args []bridge.Value) (bridge.Value, error) {
		return func(d *Device, recv *object, _ []bridge.Value) (bridge.Value, error) {
			n := &object{
				class:  d.classes[notificationClass],
				fields: map[string]bridge.Value{"via": bridge.Obj(&object{class: d.classes[stringClass], str: via})},
			}
			for k, v := range recv.fields {
				n.fields[k] = v
			}
			return bridge.Obj(n), nil
		}
	}
	builder.addMethod("build", "()Landroid/app/Notification;", 16, finalize("build"))
	builder.addMethod("getNotification", "()Landroid/app/Notification;", 11, finalize("getNotification"))
}

func addManager(manager *class) {
	for _, imp := range []struct {
		name  string
		value int32
	}{
		{"IMPORTANCE_UNSPECIFIED", -1000},
		{"IMPORTANCE_NONE", 0},
		{"IMPORTANCE_MIN", 1},
		{"IMPORTANCE_LOW", 2},
		{"IMPORTANCE_DEFAULT", 3},
		{"IMPORTANCE_HIGH", 4},
		{"IMPORTANCE_MAX", 5},
	} {
		manager.addStaticInt(imp.name, 24, imp.value)
	}

	manager.addMethod("notify", "(ILandroid/app/Notification;)V", 1,
		func(d *Device, _ *object, args []bridge.Value) (bridge.Value, error) {
			id, err := args[0].Int()
			if err != nil {
				return bridge.Void(), err
			}
			n, err := objectArg(args[1])
			if err != nil {
				return bridge.Void(), err
			}

			delivery := Delivery{ID: id}
			if v, ok := n.fields["channel"]; ok {
				delivery.ChannelID, _ = stringArg(v)
			}
			if v, ok := n.fields["ContentTitle"]; ok {
				delivery.Title, _ = stringArg(v)
			}
			if v, ok := n.fields["ContentText"]; ok {
				delivery.Text, _ = stringArg(v)
			}
			if v, ok := n.fields["AutoCancel"]; ok {
				delivery.AutoCancel, _ = v.Bool()
			}
			if v, ok := n.fields["SmallIcon"]; ok {
				delivery.Icon, _ = v.Int()
			}
			if v, ok := n.fields["via"]; ok {
				delivery.Via, _ = stringArg(v)
			}

			d.mu.Lock()
			// The host replaces an earlier notification delivered under the
			// same id.
			replaced := false
			for i := range d.delivered {
				if d.delivered[i].ID == id {
					d.delivered[i] = delivery
					replaced = true
					break
				}
			}
			if !replaced {
				d.delivered = append(d.delivered, delivery)
			}
			d.mu.Unlock()

			d.emit(Event{Type: EventDelivered, ID: id, Delivery: delivery})
			return bridge.Void(), nil
		})

	manager.addMethod("cancel", "(I)V", 1,
		func(d *Device, _ *object, args []bridge.Value) (bridge.Value, error) {
			id, err := args[0].Int()
			if err != nil {
				return bridge.Void(), err
			}
			d.mu.Lock()
			for i := range d.delivered {
				if d.delivered[i].ID == id {
					d.delivered = append(d.delivered[:i], d.delivered[i+1:]...)
					break
				}
			}
			d.mu.Unlock()
			d.emit(Event{Type: EventCancelled, ID: id})
			return bridge.Void(), nil
		})

	manager.addMethod("cancelAll", "()V", 1,
		func(d *Device, _ *object, _ []bridge.Value) (bridge.Value, error) {
			d.mu.Lock()
			d.delivered = nil
			d.mu.Unlock()
			d.emit(Event{Type: EventCancelled, ID: -1})
			return bridge.Void(), nil
		})

	manager.addMethod("createNotificationChannel", "(Landroid/app/NotificationChannel;)V", 26,
		func(d *Device, _ *object, args []bridge.Value) (bridge.Value, error) {
			ch, err := objectArg(args[0])
			if err != nil {
				return bridge.Void(), err
			}

			reg := RegisteredChannel{}
			if v, ok := ch.fields["id"]; ok {
				reg.ID, _ = stringArg(v)
			}
			if v, ok := ch.fields["name"]; ok {
				reg.Name, _ = stringArg(v)
			}
			if v, ok := ch.fields["description"]; ok {
				reg.Description, _ = stringArg(v)
			}
			if v, ok := ch.fields["importance"]; ok {
				reg.Importance, _ = v.Int()
			}

			d.mu.Lock()
			d.channels = append(d.channels, reg)
			d.mu.Unlock()

			d.emit(Event{Type: EventChannelRegistered, Channel: reg})
			return bridge.Void(), nil
		})
}

func addChannel(channel *class) {
	channel.addCtor("(Ljava/lang/String;Ljava/lang/CharSequence;I)V", 26,
		func(d *Device, args []bridge.Value) (*object, error) {
			return &object{
				class: d.classes[notificationChannelClass],
				fields: map[string]bridge.Value{
					"id":         args[0],
					"name":       args[1],
					"importance": args[2],
				},
			}, nil
		})
	channel.addMethod("setDescription", "(Ljava/lang/String;)V", 26,
		func(d *Device, recv *object, args []bridge.Value) (bridge.Value, error) {
			recv.fields["description"] = args[0]
			return bridge.Void(), nil
		})
}
