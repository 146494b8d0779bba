// Package memstore is an in-memory content store backed by go-memdb. It
// keeps entities, their revisions, bundle defaults, form definitions, built
// forms and session scratch values.
//
// Entities are stored as detached copies whose references carry only target
// identifiers. Load resolves them again, so every load hands out a graph the
// caller may mutate freely.
package memstore

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

var (
	_ ports.EntityStore   = (*Store)(nil)
	_ ports.FormStore     = (*Store)(nil)
	_ ports.ScratchStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	tableEntity   = "entity"
	tableRevision = "revision"
	tableBundle   = "bundle"
	tableFormDef  = "form_definition"
	tableForm     = "form"
	tableScratch  = "scratch"
	tableSequence = "sequence"

	indexID     = "id"
	indexUUID   = "uuid"
	indexBundle = "bundle"
	indexOwner  = "owner"

	seqRevision = "revision"

	// anyBundle keys form definitions that apply to every bundle of a kind.
	anyBundle = "*"
)

type entityRow struct {
	kind   string
	id     string
	uuid   string
	bundle string
	entity *entity.Entity
}

type revisionRow struct {
	kind       string
	revisionID string
	entityID   string
	entity     *entity.Entity
}

type bundleRow struct {
	kind     string
	bundle   string
	language string
	defs     []entity.FieldDefinition
	defaults map[string]any
}

type formDefRow struct {
	kind      string
	bundle    string
	operation string
	def       form.Definition
}

type formRow struct {
	id     string
	handle *form.Handle
}

type scratchRow struct {
	session string
	key     string
	value   any
}

type sequenceRow struct {
	name string
	next uint64
}

func stringIndex(fields ...string) memdb.Indexer {
	if len(fields) == 1 {
		return &memdb.StringFieldIndex{Field: fields[0]}
	}
	indexes := make([]memdb.Indexer, 0, len(fields))
	for _, f := range fields {
		indexes = append(indexes, &memdb.StringFieldIndex{Field: f})
	}
	return &memdb.CompoundIndex{Indexes: indexes}
}

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableEntity: {
			Name: tableEntity,
			Indexes: map[string]*memdb.IndexSchema{
				indexID:     {Name: indexID, Unique: true, Indexer: stringIndex("kind", "id")},
				indexUUID:   {Name: indexUUID, Unique: true, Indexer: stringIndex("uuid")},
				indexBundle: {Name: indexBundle, Indexer: stringIndex("kind", "bundle")},
			},
		},
		tableRevision: {
			Name: tableRevision,
			Indexes: map[string]*memdb.IndexSchema{
				indexID:    {Name: indexID, Unique: true, Indexer: stringIndex("kind", "revisionID")},
				indexOwner: {Name: indexOwner, Indexer: stringIndex("kind", "entityID")},
			},
		},
		tableBundle: {
			Name: tableBundle,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {Name: indexID, Unique: true, Indexer: stringIndex("kind", "bundle")},
			},
		},
		tableFormDef: {
			Name: tableFormDef,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {Name: indexID, Unique: true, Indexer: stringIndex("kind", "bundle", "operation")},
			},
		},
		tableForm: {
			Name: tableForm,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {Name: indexID, Unique: true, Indexer: stringIndex("id")},
			},
		},
		tableScratch: {
			Name: tableScratch,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {Name: indexID, Unique: true, Indexer: stringIndex("session", "key")},
			},
		},
		tableSequence: {
			Name: tableSequence,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {Name: indexID, Unique: true, Indexer: stringIndex("name")},
			},
		},
	},
}

// Store is the in-memory store. It is safe for concurrent use.
type Store struct {
	db     *memdb.MemDB
	ids    ports.IdentityGenerator
	logger *slog.Logger
}

// New creates an empty Store. ids issues the UUIDs of duplicated and blank
// entities.
func New(ids ports.IdentityGenerator, logger *slog.Logger) (*Store, error) {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("creating memdb: %w", err)
	}
	return &Store{db: db, ids: ids, logger: logger}, nil
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "memstore" }

// HealthCheck verifies the database answers reads.
func (s *Store) HealthCheck(_ context.Context) error {
	txn := s.db.Txn(false)
	defer txn.Abort()
	if _, err := txn.First(tableSequence, indexID, seqRevision); err != nil {
		return fmt.Errorf("memstore: %w", err)
	}
	return nil
}

// DefineBundle registers the field definitions, default language and blank
// defaults of a bundle.
func (s *Store) DefineBundle(kind entity.Kind, bundle, language string, defs []entity.FieldDefinition, defaults map[string]any) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	row := &bundleRow{
		kind:     string(kind),
		bundle:   bundle,
		language: language,
		defs:     defs,
		defaults: entity.CloneMap(defaults),
	}
	if err := txn.Insert(tableBundle, row); err != nil {
		return fmt.Errorf("defining bundle %s.%s: %w", kind, bundle, err)
	}
	txn.Commit()
	return nil
}

// DefineForm registers a form definition. An empty Bundle applies to every
// bundle of the kind that has no definition of its own.
func (s *Store) DefineForm(def form.Definition) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	row := &formDefRow{
		kind:      string(def.EntityKind),
		bundle:    cmp.Or(def.Bundle, anyBundle),
		operation: def.Operation,
		def:       def,
	}
	if err := txn.Insert(tableFormDef, row); err != nil {
		return fmt.Errorf("defining form %s: %w", def.ID, err)
	}
	txn.Commit()
	return nil
}

// nextSeq returns the next value of a named counter.
func nextSeq(txn *memdb.Txn, name string) (string, error) {
	raw, err := txn.First(tableSequence, indexID, name)
	if err != nil {
		return "", err
	}
	id := uint64(1)
	if raw != nil {
		id = raw.(*sequenceRow).next
	}
	if err := txn.Insert(tableSequence, &sequenceRow{name: name, next: id + 1}); err != nil {
		return "", err
	}
	return strconv.FormatUint(id, 10), nil
}

// bumpSeq makes sure the counter never issues id again when id is numeric.
func bumpSeq(txn *memdb.Txn, name, id string) error {
	n, perr := strconv.ParseUint(id, 10, 64)
	if perr != nil {
		// Non-numeric ids never collide with issued ones.
		return nil
	}
	raw, err := txn.First(tableSequence, indexID, name)
	if err != nil {
		return err
	}
	if raw != nil && raw.(*sequenceRow).next > n {
		return nil
	}
	return txn.Insert(tableSequence, &sequenceRow{name: name, next: n + 1})
}
