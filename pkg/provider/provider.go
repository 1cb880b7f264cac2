// Package provider defines the upstream collaborator that supplies
// relationship sets to the rendering engine.
//
// The engine never fetches data itself: it consumes a RelationshipSet and
// emits layout and geometry. How the set is produced — in-memory fixtures,
// a JSON file, a MongoDB collection — is entirely the provider's concern,
// and implementations live in the subpackages.
package provider

import (
	"context"

	"github.com/kintreeapp/kintree/pkg/family"
)

// Provider supplies the relationship set for a focal person.
//
// FetchRelationshipSet returns a set whose Selected person has the given
// id. Implementations return an error carrying the PERSON_NOT_FOUND code
// (pkg/errors) when the id is unknown, and FETCH_FAILED for transport
// failures. Results are derived fresh per call; callers must not mutate
// the returned slices.
type Provider interface {
	FetchRelationshipSet(ctx context.Context, personID string) (family.RelationshipSet, error)
}

// Func adapts a function to the Provider interface.
type Func func(ctx context.Context, personID string) (family.RelationshipSet, error)

// FetchRelationshipSet calls f.
func (f Func) FetchRelationshipSet(ctx context.Context, personID string) (family.RelationshipSet, error) {
	return f(ctx, personID)
}
