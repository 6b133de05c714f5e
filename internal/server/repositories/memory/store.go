// Package memory keeps every repository in process memory. It backs the
// "memory" DSN and the service tests.
//
// All operations serialize on one mutex. Update runs a function against a
// private copy of the data and publishes it only when the function succeeds.
package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/courses"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/grades"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/users"
)

type state struct {
	seq         int64
	order       map[string]int64
	users       map[string]*models.User
	courses     map[string]*models.Course
	assignments map[string]*models.Assignment
	grades      map[string]*models.Grade
}

func newState() *state {
	return &state{
		order:       map[string]int64{},
		users:       map[string]*models.User{},
		courses:     map[string]*models.Course{},
		assignments: map[string]*models.Assignment{},
		grades:      map[string]*models.Grade{},
	}
}

func (s *state) next(id string) {
	s.seq++
	s.order[id] = s.seq
}

func (s *state) clone() *state {
	c := &state{
		seq:         s.seq,
		order:       make(map[string]int64, len(s.order)),
		users:       make(map[string]*models.User, len(s.users)),
		courses:     make(map[string]*models.Course, len(s.courses)),
		assignments: make(map[string]*models.Assignment, len(s.assignments)),
		grades:      make(map[string]*models.Grade, len(s.grades)),
	}
	for k, v := range s.order {
		c.order[k] = v
	}
	for k, v := range s.users {
		c.users[k] = copyUser(v)
	}
	for k, v := range s.courses {
		cv := *v
		c.courses[k] = &cv
	}
	for k, v := range s.assignments {
		av := *v
		c.assignments[k] = &av
	}
	for k, v := range s.grades {
		gv := *v
		c.grades[k] = &gv
	}
	return c
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// db is what the repositories operate on: the live state behind the store
// mutex, or a transaction copy that is already exclusively held.
type db struct {
	mu  sync.Locker
	st  *state
	now func() time.Time
}

// Store owns the data. Its zero value is not usable; call New.
type Store struct {
	mu   sync.Mutex
	st   *state
	live *db
	now  func() time.Time
}

func New() *Store {
	s := &Store{st: newState(), now: time.Now}
	s.live = &db{mu: &s.mu, st: s.st, now: s.now}
	return s
}

// Tx is a set of repositories bound to one view of the data.
type Tx struct {
	db *db
}

func (t *Tx) Users() users.Repository             { return &Users{db: t.db} }
func (t *Tx) Courses() courses.Repository         { return &Courses{db: t.db} }
func (t *Tx) Assignments() assignments.Repository { return &Assignments{db: t.db} }
func (t *Tx) Grades() grades.Repository           { return &Grades{db: t.db} }

// Live returns repositories that see every committed write.
func (s *Store) Live() *Tx {
	return &Tx{db: s.live}
}

// Update runs fn against a copy of the data while holding the store lock.
// The copy replaces the live data only if fn returns nil; a panic discards it.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(&Tx{db: &db{mu: noopLocker{}, st: work, now: s.now}}); err != nil {
		return err
	}

	*s.st = *work
	return nil
}

// sortByOrder orders items by insertion; newest reverses it.
func sortByOrder[T any](st *state, items []T, id func(T) string, newest bool) {
	slices.SortStableFunc(items, func(a, b T) int {
		c := cmp.Compare(st.order[id(a)], st.order[id(b)])
		if newest {
			return -c
		}
		return c
	})
}
