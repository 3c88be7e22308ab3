package usecase

import "ppe-inventory/internal/auth"

// OnAuthChange registers fn for sign-in and sign-out events.
func (uc *implUseCase) OnAuthChange(fn func(*auth.Session)) func() {
	uc.mu.Lock()
	id := uc.nextID
	uc.nextID++
	uc.subscribers[id] = fn
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		delete(uc.subscribers, id)
		uc.mu.Unlock()
	}
}

// notify calls every subscriber outside the lock, in registration order.
func (uc *implUseCase) notify(s *auth.Session) {
	uc.mu.Lock()
	fns := make([]func(*auth.Session), 0, len(uc.subscribers))
	for id := 0; id < uc.nextID; id++ {
		if fn, ok := uc.subscribers[id]; ok {
			fns = append(fns, fn)
		}
	}
	uc.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
