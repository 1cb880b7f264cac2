// Package file loads a family data file from disk and serves relationship
// sets from it. The format is a single JSON document listing people and the
// parent/spouse links between them; link order is display order.
package file

import (
	"encoding/json"
	"os"

	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/provider/memory"
)

// Document is the on-disk family data format.
type Document struct {
	People      []family.Person `json:"people"`
	ParentLinks []ParentLink    `json:"parent_links,omitempty"`
	SpouseLinks []SpouseLink    `json:"spouse_links,omitempty"`
}

// ParentLink records that Parent is a parent of Child.
type ParentLink struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
}

// SpouseLink records a symmetric spouse relationship.
type SpouseLink struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Load reads and parses a family data file into an in-memory store.
func Load(path string) (*memory.Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "family data file %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "reading %s", path)
	}
	return Parse(data)
}

// Parse builds an in-memory store from family data bytes.
// Every link must reference a listed person.
func Parse(data []byte) (*memory.Store, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parsing family data")
	}

	store := memory.New()
	known := make(map[string]struct{}, len(doc.People))
	for _, p := range doc.People {
		if p.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidPerson, "person %q has no id", p.DisplayName())
		}
		store.AddPerson(p)
		known[p.ID] = struct{}{}
	}

	for _, l := range doc.ParentLinks {
		if err := checkRef(known, l.Parent, l.Child); err != nil {
			return nil, err
		}
		store.LinkParent(l.Parent, l.Child)
	}
	for _, l := range doc.SpouseLinks {
		if err := checkRef(known, l.A, l.B); err != nil {
			return nil, err
		}
		store.LinkSpouses(l.A, l.B)
	}

	return store, nil
}

func checkRef(known map[string]struct{}, ids ...string) error {
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return errors.New(errors.ErrCodeInvalidRelationships, "link references unknown person %s", id)
		}
	}
	return nil
}
