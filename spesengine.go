// Package spesengine resolves hierarchical catalog relationships: which
// attribute definitions are effective for an item type, and which association
// rules govern a chosen source scope.
//
// # Module Structure
//
// The module is split for clean dependency isolation:
//
//   - Root package (core): Engine, resolver, rule matching, verdicts. Depends only on catalog.
//   - catalog: Entity types, hierarchy index, structural validation. Stdlib only.
//   - loader: Snapshot loading from SQL catalogs (paged) and YAML files.
//
// Most applications import the root package plus catalog. The loader package
// is used at the edges where snapshots enter the process.
//
// # Pure Snapshot Resolution
//
// Every resolution is a pure function of a supplied Snapshot. The engine
// performs no I/O, holds no shared mutable state, and never mutates
// caller-supplied collections. Concurrent use of one Engine is safe because
// all methods are reads over data fixed at construction.
//
// # Core Concepts
//
// A Snapshot is the full catalog for one tenant: item types, the category and
// family forests, attribute groups, association types and their rules.
// Callers are responsible for supplying a complete snapshot (no pagination
// gaps) and for rebuilding the Engine when the catalog changes.
//
// A ResolutionRequest names the user's current selection. Empty ids mean
// "not chosen yet" - there is no ambient form state driving resolution.
//
//	req := spesengine.ResolutionRequest{ItemTypeID: "product", CategoryID: "phones"}
//
// # Basic Usage
//
//	engine := spesengine.NewEngine(snap)
//	res, err := engine.ResolveRequest(req)        // effective attributes
//	matches := engine.ApplicableRules(req)        // association rules in scope
//	verdict := spesengine.ValidateCardinality(matches[0].Rule, len(selection))
//
// # Index Memoization
//
// NewEngine builds the category and family hierarchy indexes once. Callers
// that construct many engines over slowly-changing forests can reuse indexes
// via WithIndexes and an IndexCache:
//
//	cache := spesengine.NewIndexCache(spesengine.WithTTL(time.Minute))
//	engine := spesengine.NewEngine(snap, spesengine.WithIndexes(catIdx, famIdx))
//
// # Diagnostics
//
// Catalogs coming out of long-lived databases accumulate stale references and
// occasionally broken parent pointers. Resolution tolerates both silently
// (stale ids contribute nothing; cycles cannot hang expansion). WithDiagnostics
// logs them once at construction so operators can clean the data:
//
//	engine := spesengine.NewEngine(snap, spesengine.WithDiagnostics())
package spesengine

import (
	"log"

	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

// Snapshot is the immutable catalog input to an Engine. All collections are
// externally owned and read-only; the engine never mutates them.
//
// RulesByType maps an association type id to its rules. Rule order within a
// type is preserved in matcher output.
type Snapshot struct {
	ItemTypes        []catalog.ItemType        `json:"itemTypes,omitempty"`
	Categories       []catalog.Category        `json:"categories,omitempty"`
	Families         []catalog.Family          `json:"families,omitempty"`
	AttributeGroups  []catalog.AttributeGroup  `json:"attributeGroups,omitempty"`
	AssociationTypes []catalog.AssociationType `json:"associationTypes,omitempty"`

	RulesByType map[string][]catalog.AssociationRule `json:"rulesByType,omitempty"`
}

// ResolutionRequest names the current selection a resolution runs against.
// An empty CategoryID or FamilyID means that axis is not chosen yet; rules
// scoped to specific ids on an unchosen axis are not applicable.
type ResolutionRequest struct {
	ItemTypeID string
	CategoryID string
	FamilyID   string
}

// Engine answers resolution queries over one catalog snapshot.
//
// Engines are cheap to create relative to snapshot loading: construction
// builds two hierarchy indexes and two id lookups, all O(n). Create a new
// Engine whenever the snapshot changes; an Engine never observes later edits
// to the collections it was built from.
type Engine struct {
	snap *Snapshot

	catIndex *catalog.Index
	famIndex *catalog.Index

	itemTypesByID map[string]catalog.ItemType
	groupsByID    map[string]catalog.AttributeGroup

	diagnostics bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithIndexes supplies prebuilt hierarchy indexes instead of building them
// from the snapshot. The indexes must have been built from the same category
// and family collections the snapshot carries; the engine does not verify
// this. Use together with IndexCache when constructing many engines over a
// slowly-changing catalog.
func WithIndexes(categories, families *catalog.Index) Option {
	return func(e *Engine) {
		e.catIndex = categories
		e.famIndex = families
	}
}

// WithDiagnostics enables construction-time structural diagnostics.
// Hierarchy cycles and stale references are logged as warnings; they never
// fail construction or change resolution results.
func WithDiagnostics() Option {
	return func(e *Engine) {
		e.diagnostics = true
	}
}

// NewEngine builds an Engine over the snapshot.
// A nil snapshot is treated as empty: every resolution yields empty results
// rather than failing.
func NewEngine(snap *Snapshot, opts ...Option) *Engine {
	if snap == nil {
		snap = &Snapshot{}
	}

	e := &Engine{snap: snap}
	for _, opt := range opts {
		opt(e)
	}

	if e.catIndex == nil {
		e.catIndex = catalog.NewIndex(catalog.CategoryLinks(snap.Categories))
	}
	if e.famIndex == nil {
		e.famIndex = catalog.NewIndex(catalog.FamilyLinks(snap.Families))
	}

	e.itemTypesByID = make(map[string]catalog.ItemType, len(snap.ItemTypes))
	for _, it := range snap.ItemTypes {
		e.itemTypesByID[it.ID] = it
	}
	e.groupsByID = make(map[string]catalog.AttributeGroup, len(snap.AttributeGroups))
	for _, g := range snap.AttributeGroups {
		e.groupsByID[g.ID] = g
	}

	if e.diagnostics {
		e.logDiagnostics()
	}

	return e
}

// Snapshot returns the snapshot the engine was built from.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap
}

// ItemType looks up an item type by id.
func (e *Engine) ItemType(id string) (catalog.ItemType, bool) {
	it, ok := e.itemTypesByID[id]
	return it, ok
}

// AttributeGroup looks up an attribute group by id.
func (e *Engine) AttributeGroup(id string) (catalog.AttributeGroup, bool) {
	g, ok := e.groupsByID[id]
	return g, ok
}

// logDiagnostics reports structural issues found in the snapshot.
// Warnings only - resolution behaves identically either way.
func (e *Engine) logDiagnostics() {
	if err := catalog.DetectCycles(catalog.CategoryLinks(e.snap.Categories)); err != nil {
		log.Printf("[spesengine] WARNING: category hierarchy: %v", err)
	}
	if err := catalog.DetectCycles(catalog.FamilyLinks(e.snap.Families)); err != nil {
		log.Printf("[spesengine] WARNING: family hierarchy: %v", err)
	}
	for _, ref := range e.StaleReferences() {
		log.Printf("[spesengine] WARNING: stale reference: %s", ref)
	}
}
