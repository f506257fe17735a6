package session

import (
	"context"
	"sync"
)

// Subscriber observes committed mutations.
// It receives the context the mutation was dispatched with, the mutation and
// a snapshot of the state right after it.
// Subscribers must not mutate the store they are subscribed to.
type Subscriber func(ctx context.Context, m Mutation, state Session)

// Mutation describes a committed state change.
type Mutation struct {
	Type ActionType
}

// Store holds the authentication state of one visitor.
// The state starts unauthenticated and changes only through Login, Logout
// or Dispatch. Reads return copies and never fail.
type Store struct {
	state       Session
	subscribers []subscription
	mu          sync.RWMutex // guards state and subscribers
	commitMu    sync.Mutex   // serializes mutations and their notifications
	nextSubID   int
}

type subscription struct {
	fn Subscriber
	id int
}

// NewStore creates a store in the unauthenticated state.
func NewStore() *Store {
	return &Store{}
}

// State returns a snapshot of the current session.
func (s *Store) State() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Login replaces the session with the given user and credentials.
// Calling Login on an authenticated store replaces the previous session entirely.
// Returns ErrInvalidPayload if userID or the token is empty.
func (s *Store) Login(userID string, auth Credentials) error {
	return s.DispatchContext(context.Background(), LoginAction(userID, auth))
}

// Logout clears the session. It is a no-op in effect on an unauthenticated store.
func (s *Store) Logout() {
	_ = s.DispatchContext(context.Background(), LogoutAction())
}

// Dispatch applies a named action to the store.
func (s *Store) Dispatch(a Action) error {
	return s.DispatchContext(context.Background(), a)
}

// DispatchContext applies a named action and hands ctx to subscribers,
// so request-scoped values such as the request id reach mutation logs.
// A rejected action leaves the state untouched and notifies no one.
func (s *Store) DispatchContext(ctx context.Context, a Action) error {
	if err := a.Validate(); err != nil {
		return err
	}

	switch a.Type {
	case ActionLogin:
		userID, auth, _ := a.Payload.credentials()
		s.commit(ctx, ActionLogin, authenticated(userID, auth))
	case ActionLogout:
		s.commit(ctx, ActionLogout, Session{})
	}
	return nil
}

// Subscribe registers fn to be called after every committed mutation.
// Subscribers are called in registration order.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscription{fn: fn, id: id})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// commit swaps the whole state under the write lock, then notifies subscribers.
func (s *Store) commit(ctx context.Context, t ActionType, next Session) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	s.state = next
	subs := make([]subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	m := Mutation{Type: t}
	for _, sub := range subs {
		sub.fn(ctx, m, next.clone())
	}
}
