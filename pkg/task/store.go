package task

import (
	"errors"
	"sort"
)

var ErrNotFound = errors.New("task not found")

// Persistor loads and saves a whole task collection.
type Persistor interface {
	Load() ([]*Task, error)
	Save([]*Task) error
}

// Store is an id-keyed task collection that writes through to its
// persistor on every mutation.
type Store struct {
	persist Persistor
	tasks   map[int]*Task
}

// NewStore loads the collection held by the given persistor.
func NewStore(p Persistor) (*Store, error) {
	ts, err := p.Load()
	if err != nil {
		return nil, err
	}
	s := &Store{persist: p, tasks: make(map[int]*Task, len(ts))}
	for _, t := range ts {
		s.tasks[t.ID] = t
	}
	return s, nil
}

func (s *Store) Find(id int) (*Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

// All returns every task ordered by id. Ids are issued monotonically,
// so this is also file order.
func (s *Store) All() []*Task {
	out := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Insert(t *Task) error {
	s.tasks[t.ID] = t
	return s.flush()
}

func (s *Store) Update(t *Task) error {
	s.tasks[t.ID] = t
	return s.flush()
}

func (s *Store) Remove(id int) error {
	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return s.flush()
}

func (s *Store) flush() error {
	return s.persist.Save(s.All())
}
