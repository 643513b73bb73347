package wizardsession

import (
	"fmt"
	"sync"
	"time"
)

type entry[T Session] struct {
	value    T
	lastSeen time.Time
}

// Repository хранит живые сессии в памяти.
// Сессия истекает через ttl после последнего обращения; при удалении у неё вызывается Close.
type Repository[T Session] struct {
	mu          sync.RWMutex
	items       map[string]*entry[T]
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

// NewRepository создает репозиторий. maxSessions = 0 снимает ограничение.
func NewRepository[T Session](ttl time.Duration, maxSessions int) *Repository[T] {
	return &Repository[T]{
		items:       make(map[string]*entry[T]),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Save добавляет новую сессию
func (r *Repository[T]) Save(id string, value T) error {
	var expired []T

	r.mu.Lock()
	if _, ok := r.items[id]; ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: id=%s", ErrSessionExists, id)
	}

	if r.maxSessions > 0 && len(r.items) >= r.maxSessions {
		expired = r.removeExpiredLocked()
		if len(r.items) >= r.maxSessions {
			r.mu.Unlock()
			closeAll(expired)
			return ErrTooManySessions
		}
	}

	r.items[id] = &entry[T]{value: value, lastSeen: r.now()}
	r.mu.Unlock()

	closeAll(expired)
	return nil
}

// Get возвращает сессию и продлевает её жизнь
func (r *Repository[T]) Get(id string) (T, error) {
	var zero T

	r.mu.Lock()
	e, ok := r.items[id]
	if !ok {
		r.mu.Unlock()
		return zero, ErrSessionNotFound
	}

	now := r.now()
	if r.isExpired(e, now) {
		delete(r.items, id)
		r.mu.Unlock()
		e.value.Close()
		return zero, ErrSessionNotFound
	}

	e.lastSeen = now
	r.mu.Unlock()

	return e.value, nil
}

// Delete удаляет сессию и закрывает её
func (r *Repository[T]) Delete(id string) error {
	r.mu.Lock()
	e, ok := r.items[id]
	if ok {
		delete(r.items, id)
	}
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	e.value.Close()
	return nil
}

// EvictExpired удаляет истекшие сессии и возвращает их количество
func (r *Repository[T]) EvictExpired() int {
	r.mu.Lock()
	expired := r.removeExpiredLocked()
	r.mu.Unlock()

	closeAll(expired)
	return len(expired)
}

// Len количество сессий
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// CloseAll закрывает и удаляет все сессии
func (r *Repository[T]) CloseAll() int {
	r.mu.Lock()
	values := make([]T, 0, len(r.items))
	for id, e := range r.items {
		values = append(values, e.value)
		delete(r.items, id)
	}
	r.mu.Unlock()

	closeAll(values)
	return len(values)
}

func (r *Repository[T]) isExpired(e *entry[T], now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) >= r.ttl
}

// removeExpiredLocked вызывается под блокировкой, Close выполняет вызывающий
func (r *Repository[T]) removeExpiredLocked() []T {
	now := r.now()
	var expired []T
	for id, e := range r.items {
		if r.isExpired(e, now) {
			expired = append(expired, e.value)
			delete(r.items, id)
		}
	}
	return expired
}

func closeAll[T Session](values []T) {
	for _, v := range values {
		v.Close()
	}
}
