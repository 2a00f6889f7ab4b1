package session

import (
	"sync"

	"github.com/jbeshir/devfeed/internal/domain"
)

// FeedObserver receives feed session notifications. Calls for one session never overlap
// and arrive in the order the state changed. Observers may call back into the session.
type FeedObserver interface {
	ItemsChanged(items []domain.Article)
	LoadingChanged(loading bool)
	LoadFailed(err error)
}

// FeedObserverFuncs adapts plain functions to FeedObserver. Nil fields are skipped.
type FeedObserverFuncs struct {
	OnItems   func(items []domain.Article)
	OnLoading func(loading bool)
	OnFailure func(err error)
}

func (f FeedObserverFuncs) ItemsChanged(items []domain.Article) {
	if f.OnItems != nil {
		f.OnItems(items)
	}
}

func (f FeedObserverFuncs) LoadingChanged(loading bool) {
	if f.OnLoading != nil {
		f.OnLoading(loading)
	}
}

func (f FeedObserverFuncs) LoadFailed(err error) {
	if f.OnFailure != nil {
		f.OnFailure(err)
	}
}

type event func(FeedObserver)

// dispatcher queues events under the session lock and delivers them outside it. Only one
// goroutine delivers at a time; a goroutine that finds delivery in progress leaves its
// events for the current deliverer, which rechecks the queue before giving up.
type dispatcher struct {
	deliverMu sync.Mutex

	// Guarded by the owning session's mutex.
	pending   []event
	observers []registeredObserver
	nextID    int
}

type registeredObserver struct {
	id       int
	observer FeedObserver
}

// enqueue must be called with the session mutex held.
func (d *dispatcher) enqueue(events ...event) {
	d.pending = append(d.pending, events...)
}

// subscribe must be called with the session mutex held.
func (d *dispatcher) subscribe(o FeedObserver) int {
	d.nextID++
	d.observers = append(d.observers, registeredObserver{id: d.nextID, observer: o})
	return d.nextID
}

// unsubscribe must be called with the session mutex held.
func (d *dispatcher) unsubscribe(id int) {
	for i, r := range d.observers {
		if r.id == id {
			d.observers = append(d.observers[:i:i], d.observers[i+1:]...)
			return
		}
	}
}

// flush delivers pending events. mu is the owning session's mutex and must not be held.
func (d *dispatcher) flush(mu *sync.Mutex) {
	for {
		if !d.deliverMu.TryLock() {
			return
		}
		for {
			mu.Lock()
			events := d.pending
			d.pending = nil
			observers := make([]FeedObserver, 0, len(d.observers))
			for _, r := range d.observers {
				observers = append(observers, r.observer)
			}
			mu.Unlock()

			if len(events) == 0 {
				break
			}
			for _, e := range events {
				for _, o := range observers {
					e(o)
				}
			}
		}
		d.deliverMu.Unlock()

		mu.Lock()
		empty := len(d.pending) == 0
		mu.Unlock()
		if empty {
			return
		}
	}
}

func itemsChanged(items []domain.Article) event {
	return func(o FeedObserver) { o.ItemsChanged(items) }
}

func loadingChanged(loading bool) event {
	return func(o FeedObserver) { o.LoadingChanged(loading) }
}

func loadFailed(err error) event {
	return func(o FeedObserver) { o.LoadFailed(err) }
}
