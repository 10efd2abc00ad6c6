package kvstore

import "sync"

// Hub reparte eventos de cambio a los suscriptores. Los backends lo embeben
// y llaman Publish después de confirmar la escritura.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe devuelve el canal de eventos y la función para darse de baja.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++

	ch := make(chan Event, 16)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Publish notifica a todos los suscriptores. Si el buffer de alguno está
// lleno, ese evento se descarta para ese suscriptor: el consumidor relee la
// colección completa al recibir cualquier evento, así que perder uno
// intermedio no pierde datos.
func (h *Hub) Publish(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- Event{Key: key}:
		default:
		}
	}
}
