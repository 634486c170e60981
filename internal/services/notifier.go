package services

import "sync"

// IdentityEvent — смена identity: регистрация, вход, выход.
type IdentityEvent struct {
	Kind   string // register|login|logout
	UserID string
	Email  string
}

// IdentityNotifier — общий наблюдаемый identity-поток с подпиской/отпиской.
// Никаких глобальных синглтонов: экземпляр собирается в app и раздаётся
// заинтересованным.
type IdentityNotifier struct {
	mu   sync.Mutex
	subs map[int]chan IdentityEvent
	next int
}

func NewIdentityNotifier() *IdentityNotifier {
	return &IdentityNotifier{subs: make(map[int]chan IdentityEvent)}
}

// Subscribe возвращает канал событий и функцию отписки.
func (n *IdentityNotifier) Subscribe() (<-chan IdentityEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan IdentityEvent, 16)
	n.subs[id] = ch

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if c, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(c)
		}
	}
	return ch, unsubscribe
}

// Publish рассылает событие всем подписчикам. Медленный подписчик события
// теряет — блокировать аутентификацию из-за него нельзя.
func (n *IdentityNotifier) Publish(ev IdentityEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
