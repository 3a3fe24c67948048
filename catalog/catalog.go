// Package catalog provides the entity types and pure transforms for the
// spesengine resolution engine.
//
// This package contains the data structures and low-level algorithms shared by
// the attribute resolver and the association rule matcher. It sits between the
// loader package (which produces catalog snapshots from SQL or YAML) and the
// root spesengine package (which answers resolution queries).
//
// # Package Responsibilities
//
// The catalog package handles three concerns:
//
//  1. Entity representation (Category, Family, ItemType, AttributeGroup,
//     AssociationType, AssociationRule) - the read-only inputs to resolution
//  2. Hierarchy indexing (Index, ExpandDescendants) - parent/child adjacency
//     over category and family forests with descendant expansion
//  3. Structural validation (DetectCycles) - advisory forest checks run by
//     the CLI and by the engine's construction-time diagnostics
//
// # Key Types
//
// Category and Family form parent-pointer forests. Both carry direct
// attribute-group bindings; a Family additionally belongs to a Category.
// ItemType links into both forests and carries its own bindings.
//
// AttributeGroupBinding records how a group applies to its owner: the
// Required flag and the Inherited provenance marker. The resolver carries
// bindings through unchanged; it does not enforce inheritance semantics
// beyond first-occurrence-wins deduplication.
//
// AssociationRule scopes an AssociationType to specific source/target
// category and family id sets. An empty id set always means "matches any",
// never "matches nothing".
//
// # Relationship to Other Packages
//
// The catalog package is dependency-free (stdlib only) and imported by both:
//   - loader package (adds database/sql and YAML codecs)
//   - root spesengine package (builds the Engine over these types)
//
// This layering keeps the core resolution path lightweight while supporting
// rich snapshot handling at the edges.
package catalog

// Cardinality describes the structural arity of an association type.
type Cardinality string

// Cardinality values.
const (
	OneToOne   Cardinality = "one-to-one"
	OneToMany  Cardinality = "one-to-many"
	ManyToOne  Cardinality = "many-to-one"
	ManyToMany Cardinality = "many-to-many"
)

// Direction describes whether an association is navigable both ways.
type Direction string

// Direction values.
const (
	Directed   Direction = "directed"
	Undirected Direction = "undirected"
)

// AppliesTo describes which end of an association a rule refines.
type AppliesTo string

// AppliesTo values.
const (
	AppliesToSource AppliesTo = "source"
	AppliesToTarget AppliesTo = "target"
)

// Category is a node in the catalog taxonomy forest.
// ParentCategoryID is empty for root categories. LinkedItemTypeIDs lists the
// item types that may use this category; AttributeGroupIDs and Bindings carry
// the category's direct attribute-group contributions.
type Category struct {
	ID                string                  `json:"id"`
	ParentCategoryID  string                  `json:"parentCategoryId,omitempty"`
	LinkedItemTypeIDs []string                `json:"linkedItemTypeIds,omitempty"`
	AttributeGroupIDs []string                `json:"attributeGroupIds,omitempty"`
	Bindings          []AttributeGroupBinding `json:"attributeGroupBindings,omitempty"`
	CreatedBy         UserRef                 `json:"createdBy,omitzero"`
	UpdatedBy         UserRef                 `json:"updatedBy,omitzero"`
}

// Family is a node in the family forest. Families nest under a category via
// CategoryID; ParentFamilyID is empty for root families.
type Family struct {
	ID                string                  `json:"id"`
	ParentFamilyID    string                  `json:"parentFamilyId,omitempty"`
	CategoryID        string                  `json:"categoryId,omitempty"`
	AttributeGroupIDs []string                `json:"attributeGroupIds,omitempty"`
	Bindings          []AttributeGroupBinding `json:"attributeGroupBindings,omitempty"`
	CreatedBy         UserRef                 `json:"createdBy,omitzero"`
	UpdatedBy         UserRef                 `json:"updatedBy,omitzero"`
}

// ItemType describes a kind of catalog item. CategoryIDs and LinkedFamilyIDs
// seed hierarchy expansion during attribute resolution; AttributeGroupIDs and
// Bindings are the item type's own contributions.
type ItemType struct {
	ID                string                  `json:"id"`
	Name              string                  `json:"name,omitempty"`
	CategoryIDs       []string                `json:"categoryIds,omitempty"`
	LinkedFamilyIDs   []string                `json:"linkedFamilyIds,omitempty"`
	AttributeGroupIDs []string                `json:"attributeGroupIds,omitempty"`
	Bindings          []AttributeGroupBinding `json:"attributeGroupBindings,omitempty"`
	CreatedBy         UserRef                 `json:"createdBy,omitzero"`
	UpdatedBy         UserRef                 `json:"updatedBy,omitzero"`
}

// Attribute is a single attribute definition inside a group.
type Attribute struct {
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	Key        string   `json:"key,omitempty"`
	Required   bool     `json:"required,omitempty"`
	Type       string   `json:"type,omitempty"`
	Default    string   `json:"default,omitempty"`
	Validation []string `json:"validation,omitempty"`
}

// AttributeGroup is a named bundle of attribute definitions that can be bound
// to an item type, category, or family.
type AttributeGroup struct {
	ID         string      `json:"id"`
	Name       string      `json:"name,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
	CreatedBy  UserRef     `json:"createdBy,omitzero"`
	UpdatedBy  UserRef     `json:"updatedBy,omitzero"`
}

// AttributeGroupBinding records how an attribute group applies to its owner.
// Inherited is a provenance marker carried through resolution unchanged.
type AttributeGroupBinding struct {
	AttributeGroupID string `json:"attributeGroupId"`
	Required         bool   `json:"required,omitempty"`
	Inherited        bool   `json:"inherited,omitempty"`
}

// AssociationType is a typed relationship definition between two item types.
type AssociationType struct {
	ID               string      `json:"id"`
	Name             string      `json:"name,omitempty"`
	SourceItemTypeID string      `json:"sourceItemTypeId"`
	TargetItemTypeID string      `json:"targetItemTypeId"`
	Cardinality      Cardinality `json:"cardinality,omitempty"`
	Direction        Direction   `json:"direction,omitempty"`
}

// AssociationRule is a scoped refinement of an association type. Each id set
// restricts one axis of one end; an empty set leaves that axis unconstrained.
// MaxTargets nil or pointing at 0 means unbounded.
type AssociationRule struct {
	ID                string    `json:"id"`
	AssociationTypeID string    `json:"associationTypeId"`
	AppliesTo         AppliesTo `json:"appliesTo,omitempty"`
	SourceCategoryIDs []string  `json:"sourceCategoryIds,omitempty"`
	SourceFamilyIDs   []string  `json:"sourceFamilyIds,omitempty"`
	TargetCategoryIDs []string  `json:"targetCategoryIds,omitempty"`
	TargetFamilyIDs   []string  `json:"targetFamilyIds,omitempty"`
	MinTargets        int       `json:"minTargets,omitempty"`
	MaxTargets        *int      `json:"maxTargets,omitempty"`
}

// Item is a candidate target record for association rule filtering.
// Pools passed to TargetCandidates are expected to be pre-filtered by the
// caller to the rule's target item type and an active lifecycle status.
type Item struct {
	ID         string `json:"id"`
	ItemTypeID string `json:"itemTypeId,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	FamilyID   string `json:"familyId,omitempty"`
	Status     string `json:"status,omitempty"`
}
