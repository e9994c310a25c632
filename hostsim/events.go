package hostsim

// EventType discriminates host lifecycle events.
type EventType uint8

const (
	EventDelivered EventType = iota
	EventCancelled
	EventChannelRegistered
)

// Event describes something the simulated host did in response to a call.
type Event struct {
	Delivery Delivery
	Channel  RegisteredChannel
	ID       int32
	Type     EventType
}

// Observer receives notifications about host lifecycle events.
type Observer interface {
	OnHostEvent(Event)
}

// Subscribe adds an observer for lifecycle events.
func (d *Device) Subscribe(o Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, o)
}

// Unsubscribe removes an observer.
func (d *Device) Unsubscribe(o Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, obs := range d.observers {
		if obs == o {
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			return
		}
	}
}

func (d *Device) emit(e Event) {
	d.mu.Lock()
	obs := make([]Observer, len(d.observers))
	copy(obs, d.observers)
	d.mu.Unlock()

	for _, o := range obs {
		o.OnHostEvent(e)
	}
}
