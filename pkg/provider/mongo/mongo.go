// Package mongo serves relationship sets from a MongoDB collection.
//
// Each document in the collection is one person plus the ids linking them
// to the rest of the family:
//
//	{
//	  "id": "...", "given_name": "...", ...,
//	  "parent_ids": ["..."],
//	  "spouse_ids": ["..."]
//	}
//
// Parents, spouses, siblings (shared parent), and children (inverse parent
// link) are resolved with separate queries per fetch; the engine treats the
// provider as opaque and never caches the result.
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/provider"
)

// DefaultCollection is the collection name used when none is configured.
const DefaultCollection = "people"

// personDoc is the stored shape: a person plus link ids.
type personDoc struct {
	family.Person `bson:",inline"`
	ParentIDs     []string `bson:"parent_ids,omitempty"`
	SpouseIDs     []string `bson:"spouse_ids,omitempty"`
}

// Store serves relationship sets from one MongoDB collection.
type Store struct {
	coll *mongo.Collection
}

// New creates a store over the given collection.
func New(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// Connect dials MongoDB and returns a store over db/coll along with a
// disconnect function.
func Connect(ctx context.Context, uri, db, coll string) (*Store, func(context.Context) error, error) {
	if coll == "" {
		coll = DefaultCollection
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "connecting to mongodb")
	}
	return New(client.Database(db).Collection(coll)), client.Disconnect, nil
}

// FetchRelationshipSet derives the relationship set for personID.
func (s *Store) FetchRelationshipSet(ctx context.Context, personID string) (family.RelationshipSet, error) {
	var selected personDoc
	err := s.coll.FindOne(ctx, bson.M{"id": personID}).Decode(&selected)
	if err == mongo.ErrNoDocuments {
		return family.RelationshipSet{}, errors.New(errors.ErrCodePersonNotFound, "person %s not found", personID)
	}
	if err != nil {
		return family.RelationshipSet{}, errors.Wrap(errors.ErrCodeFetchFailed, err, "loading person %s", personID)
	}

	set := family.RelationshipSet{Selected: selected.Person}

	if len(selected.ParentIDs) > 0 {
		parents, err := s.findOrdered(ctx, selected.ParentIDs)
		if err != nil {
			return family.RelationshipSet{}, err
		}
		set.Parents = parents

		siblings, err := s.findPeople(ctx, bson.M{
			"parent_ids": bson.M{"$in": selected.ParentIDs},
			"id":         bson.M{"$ne": personID},
		})
		if err != nil {
			return family.RelationshipSet{}, err
		}
		set.Siblings = siblings
	}

	if len(selected.SpouseIDs) > 0 {
		spouses, err := s.findOrdered(ctx, selected.SpouseIDs)
		if err != nil {
			return family.RelationshipSet{}, err
		}
		set.Spouses = spouses
	}

	children, err := s.findPeople(ctx, bson.M{"parent_ids": personID})
	if err != nil {
		return family.RelationshipSet{}, err
	}
	set.Children = children

	return set, nil
}

// findOrdered loads people by id, preserving the order of ids — the stored
// link order is the display order.
func (s *Store) findOrdered(ctx context.Context, ids []string) ([]family.Person, error) {
	found, err := s.findPeople(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]family.Person, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	out := make([]family.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) findPeople(ctx context.Context, filter bson.M) ([]family.Person, error) {
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "birth_date", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "querying people")
	}
	defer cursor.Close(ctx)

	var docs []personDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "decoding people")
	}
	people := make([]family.Person, len(docs))
	for i, d := range docs {
		people[i] = d.Person
	}
	return people, nil
}

// Ensure Store implements Provider.
var _ provider.Provider = (*Store)(nil)
