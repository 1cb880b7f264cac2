// Package memory provides an in-memory relationship provider backed by a
// person table and parent/spouse link lists. It serves as the demo data
// source and as the backing store for the file provider.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/provider"
)

// Store holds people and the links between them. Relationship sets are
// derived per fetch: parents come from parent links, children from their
// inverse, siblings from shared parents, spouses from spouse links.
// Link insertion order is preserved as display order.
type Store struct {
	mu      sync.RWMutex
	people  map[string]family.Person
	order   map[string]int // insertion order, for stable display order
	parents map[string][]string
	spouses map[string][]string
	next    int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		people:  make(map[string]family.Person),
		order:   make(map[string]int),
		parents: make(map[string][]string),
		spouses: make(map[string][]string),
	}
}

// AddPerson registers a person. A person with no ID is assigned a fresh
// uuid. Returns the stored person.
func (s *Store) AddPerson(p family.Person) family.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, exists := s.people[p.ID]; !exists {
		s.order[p.ID] = s.next
		s.next++
	}
	s.people[p.ID] = p
	return p
}

// LinkParent records parentID as a parent of childID.
func (s *Store) LinkParent(parentID, childID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parents[childID] = appendUnique(s.parents[childID], parentID)
}

// LinkSpouses records a symmetric spouse link between a and b.
func (s *Store) LinkSpouses(a, b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spouses[a] = appendUnique(s.spouses[a], b)
	s.spouses[b] = appendUnique(s.spouses[b], a)
}

// People returns all stored people in insertion order.
func (s *Store) People() []family.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]family.Person, 0, len(s.people))
	for _, p := range s.people {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return s.order[out[i].ID] < s.order[out[j].ID] })
	return out
}

// FetchRelationshipSet derives the relationship set for personID.
func (s *Store) FetchRelationshipSet(ctx context.Context, personID string) (family.RelationshipSet, error) {
	if err := ctx.Err(); err != nil {
		return family.RelationshipSet{}, errors.Wrap(errors.ErrCodeFetchFailed, err, "fetch canceled")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	selected, ok := s.people[personID]
	if !ok {
		return family.RelationshipSet{}, errors.New(errors.ErrCodePersonNotFound, "person %s not found", personID)
	}

	set := family.RelationshipSet{Selected: selected}

	for _, pid := range s.parents[personID] {
		if p, ok := s.people[pid]; ok {
			set.Parents = append(set.Parents, p)
		}
	}

	// Siblings share at least one parent; scanned in insertion order so
	// display order is stable across fetches.
	parentSet := make(map[string]struct{}, len(s.parents[personID]))
	for _, pid := range s.parents[personID] {
		parentSet[pid] = struct{}{}
	}
	if len(parentSet) > 0 {
		for _, p := range s.peopleInOrder() {
			if p.ID == personID {
				continue
			}
			for _, pid := range s.parents[p.ID] {
				if _, shared := parentSet[pid]; shared {
					set.Siblings = append(set.Siblings, p)
					break
				}
			}
		}
	}

	for _, sid := range s.spouses[personID] {
		if p, ok := s.people[sid]; ok {
			set.Spouses = append(set.Spouses, p)
		}
	}

	for _, p := range s.peopleInOrder() {
		for _, pid := range s.parents[p.ID] {
			if pid == personID {
				set.Children = append(set.Children, p)
				break
			}
		}
	}

	return set, nil
}

// peopleInOrder returns people sorted by insertion order.
// Callers must hold at least the read lock.
func (s *Store) peopleInOrder() []family.Person {
	out := make([]family.Person, 0, len(s.people))
	for _, p := range s.people {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return s.order[out[i].ID] < s.order[out[j].ID] })
	return out
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

// Ensure Store implements Provider.
var _ provider.Provider = (*Store)(nil)
