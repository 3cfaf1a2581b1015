// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Tick uint64
	Data any // полезная нагрузка, см. types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — синхронный диспетчер событий: Dispatch вызывает подписчиков
// в порядке подписки, в том же потоке, что и тик.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch — отправка события всем подписчикам. Nil-диспетчер молча ничего не делает.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
