// Package loader produces spesengine snapshots from the places catalogs
// live: a SQL database or a YAML/JSON snapshot file.
//
// The SQL loader pages through each catalog table with a bounded page size
// and concatenates the pages, so arbitrarily large catalogs load without
// unbounded single queries. The resulting Snapshot is complete by
// construction - the engine assumes no pagination gaps.
//
// The loader works with *sql.DB, *sql.Tx, or *sql.Conn via the Querier
// interface, so snapshot loads can participate in transactions and observe
// uncommitted catalog edits.
package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/UmitCamurcuk/spesengineDESING-sub007"
	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

// Querier executes queries against the catalog database.
// Implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// defaultPageSize bounds each catalog page query.
const defaultPageSize = 500

// Options configure a Load call.
type Options struct {
	pageSize int
}

// Option configures snapshot loading.
type Option func(*Options)

// WithPageSize sets the page size for catalog queries. Values below 1 fall
// back to the default.
func WithPageSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// Load reads the full catalog snapshot for one tenant-less deployment.
// Every table is read in id order, page by page, until a short page marks
// the end. The returned snapshot is independent of the database handle and
// safe to hand to a long-lived Engine.
func Load(ctx context.Context, q Querier, opts ...Option) (*spesengine.Snapshot, error) {
	o := Options{pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}

	snap := &spesengine.Snapshot{}

	var err error
	if snap.Categories, err = loadCategories(ctx, q, o.pageSize); err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	if snap.Families, err = loadFamilies(ctx, q, o.pageSize); err != nil {
		return nil, fmt.Errorf("loading families: %w", err)
	}
	if snap.ItemTypes, err = loadItemTypes(ctx, q, o.pageSize); err != nil {
		return nil, fmt.Errorf("loading item types: %w", err)
	}
	if snap.AttributeGroups, err = loadAttributeGroups(ctx, q, o.pageSize); err != nil {
		return nil, fmt.Errorf("loading attribute groups: %w", err)
	}
	if snap.AssociationTypes, err = loadAssociationTypes(ctx, q, o.pageSize); err != nil {
		return nil, fmt.Errorf("loading association types: %w", err)
	}
	if snap.RulesByType, err = loadRules(ctx, q, o.pageSize); err != nil {
		return nil, fmt.Errorf("loading association rules: %w", err)
	}

	if err := attachBindings(ctx, q, o.pageSize, snap); err != nil {
		return nil, fmt.Errorf("loading attribute group bindings: %w", err)
	}

	return snap, nil
}

// forEachPage runs query with (limit, offset) pages until a short page.
// scan consumes one row and reports rows consumed via the returned count.
func forEachPage(ctx context.Context, q Querier, pageSize int, query string, scan func(rows *sql.Rows) error) error {
	for offset := 0; ; offset += pageSize {
		rows, err := q.QueryContext(ctx, query, pageSize, offset)
		if err != nil {
			return err
		}

		count := 0
		for rows.Next() {
			if err := scan(rows); err != nil {
				_ = rows.Close()
				return err
			}
			count++
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return err
		}
		_ = rows.Close()

		if count < pageSize {
			return nil
		}
	}
}

func loadCategories(ctx context.Context, q Querier, pageSize int) ([]catalog.Category, error) {
	var out []catalog.Category
	byID := map[string]int{}

	err := forEachPage(ctx, q, pageSize,
		`SELECT id, COALESCE(parent_category_id, '') FROM categories ORDER BY id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var c catalog.Category
			if err := rows.Scan(&c.ID, &c.ParentCategoryID); err != nil {
				return err
			}
			byID[c.ID] = len(out)
			out = append(out, c)
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachPage(ctx, q, pageSize,
		`SELECT category_id, item_type_id FROM category_item_types ORDER BY category_id, item_type_id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var categoryID, itemTypeID string
			if err := rows.Scan(&categoryID, &itemTypeID); err != nil {
				return err
			}
			if i, ok := byID[categoryID]; ok {
				out[i].LinkedItemTypeIDs = append(out[i].LinkedItemTypeIDs, itemTypeID)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func loadFamilies(ctx context.Context, q Querier, pageSize int) ([]catalog.Family, error) {
	var out []catalog.Family
	return out, forEachPage(ctx, q, pageSize,
		`SELECT id, COALESCE(parent_family_id, ''), COALESCE(category_id, '') FROM families ORDER BY id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var f catalog.Family
			if err := rows.Scan(&f.ID, &f.ParentFamilyID, &f.CategoryID); err != nil {
				return err
			}
			out = append(out, f)
			return nil
		})
}

func loadItemTypes(ctx context.Context, q Querier, pageSize int) ([]catalog.ItemType, error) {
	var out []catalog.ItemType
	byID := map[string]int{}

	err := forEachPage(ctx, q, pageSize,
		`SELECT id, COALESCE(name, '') FROM item_types ORDER BY id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var it catalog.ItemType
			if err := rows.Scan(&it.ID, &it.Name); err != nil {
				return err
			}
			byID[it.ID] = len(out)
			out = append(out, it)
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachPage(ctx, q, pageSize,
		`SELECT item_type_id, category_id FROM item_type_categories ORDER BY item_type_id, category_id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var itemTypeID, categoryID string
			if err := rows.Scan(&itemTypeID, &categoryID); err != nil {
				return err
			}
			if i, ok := byID[itemTypeID]; ok {
				out[i].CategoryIDs = append(out[i].CategoryIDs, categoryID)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachPage(ctx, q, pageSize,
		`SELECT item_type_id, family_id FROM item_type_families ORDER BY item_type_id, family_id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var itemTypeID, familyID string
			if err := rows.Scan(&itemTypeID, &familyID); err != nil {
				return err
			}
			if i, ok := byID[itemTypeID]; ok {
				out[i].LinkedFamilyIDs = append(out[i].LinkedFamilyIDs, familyID)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func loadAttributeGroups(ctx context.Context, q Querier, pageSize int) ([]catalog.AttributeGroup, error) {
	var out []catalog.AttributeGroup
	byID := map[string]int{}

	err := forEachPage(ctx, q, pageSize,
		`SELECT id, COALESCE(name, '') FROM attribute_groups ORDER BY id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var g catalog.AttributeGroup
			if err := rows.Scan(&g.ID, &g.Name); err != nil {
				return err
			}
			byID[g.ID] = len(out)
			out = append(out, g)
			return nil
		})
	if err != nil {
		return nil, err
	}

	// Attribute order within a group matters for resolution output, so rows
	// come back ordered by the explicit position column.
	err = forEachPage(ctx, q, pageSize,
		`SELECT group_id, id, COALESCE(name, ''), COALESCE(key, ''), required, COALESCE(type, ''), COALESCE(default_value, '')
		 FROM attributes ORDER BY group_id, position, id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var groupID string
			var a catalog.Attribute
			if err := rows.Scan(&groupID, &a.ID, &a.Name, &a.Key, &a.Required, &a.Type, &a.Default); err != nil {
				return err
			}
			if i, ok := byID[groupID]; ok {
				out[i].Attributes = append(out[i].Attributes, a)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func loadAssociationTypes(ctx context.Context, q Querier, pageSize int) ([]catalog.AssociationType, error) {
	var out []catalog.AssociationType
	return out, forEachPage(ctx, q, pageSize,
		`SELECT id, COALESCE(name, ''), source_item_type_id, target_item_type_id, COALESCE(cardinality, ''), COALESCE(direction, '')
		 FROM association_types ORDER BY id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var t catalog.AssociationType
			var cardinality, direction string
			if err := rows.Scan(&t.ID, &t.Name, &t.SourceItemTypeID, &t.TargetItemTypeID, &cardinality, &direction); err != nil {
				return err
			}
			t.Cardinality = catalog.Cardinality(cardinality)
			t.Direction = catalog.Direction(direction)
			out = append(out, t)
			return nil
		})
}

func loadRules(ctx context.Context, q Querier, pageSize int) (map[string][]catalog.AssociationRule, error) {
	type ruleLoc struct {
		typeID string
		idx    int
	}

	rulesByType := make(map[string][]catalog.AssociationRule)
	ruleIndex := map[string]ruleLoc{}

	err := forEachPage(ctx, q, pageSize,
		`SELECT id, association_type_id, COALESCE(applies_to, ''), min_targets, max_targets
		 FROM association_rules ORDER BY association_type_id, id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var r catalog.AssociationRule
			var appliesTo string
			var maxTargets sql.NullInt64
			if err := rows.Scan(&r.ID, &r.AssociationTypeID, &appliesTo, &r.MinTargets, &maxTargets); err != nil {
				return err
			}
			r.AppliesTo = catalog.AppliesTo(appliesTo)
			if maxTargets.Valid {
				max := int(maxTargets.Int64)
				r.MaxTargets = &max
			}
			ruleIndex[r.ID] = ruleLoc{typeID: r.AssociationTypeID, idx: len(rulesByType[r.AssociationTypeID])}
			rulesByType[r.AssociationTypeID] = append(rulesByType[r.AssociationTypeID], r)
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachPage(ctx, q, pageSize,
		`SELECT rule_id, axis, ref_id FROM association_rule_scopes ORDER BY rule_id, axis, ref_id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var ruleID, axis, refID string
			if err := rows.Scan(&ruleID, &axis, &refID); err != nil {
				return err
			}
			loc, ok := ruleIndex[ruleID]
			if !ok {
				return nil // scope row for a rule outside the snapshot; skip
			}
			rule := &rulesByType[loc.typeID][loc.idx]
			switch axis {
			case "source_category":
				rule.SourceCategoryIDs = append(rule.SourceCategoryIDs, refID)
			case "source_family":
				rule.SourceFamilyIDs = append(rule.SourceFamilyIDs, refID)
			case "target_category":
				rule.TargetCategoryIDs = append(rule.TargetCategoryIDs, refID)
			case "target_family":
				rule.TargetFamilyIDs = append(rule.TargetFamilyIDs, refID)
			default:
				return fmt.Errorf("unknown rule scope axis %q for rule %q", axis, ruleID)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	return rulesByType, nil
}

// attachBindings distributes attribute_group_bindings rows onto their owning
// item types, categories and families. The ids slice and the bindings slice
// stay parallel: each binding row also contributes its group id.
func attachBindings(ctx context.Context, q Querier, pageSize int, snap *spesengine.Snapshot) error {
	itemTypes := map[string]int{}
	for i, it := range snap.ItemTypes {
		itemTypes[it.ID] = i
	}
	categories := map[string]int{}
	for i, c := range snap.Categories {
		categories[c.ID] = i
	}
	families := map[string]int{}
	for i, f := range snap.Families {
		families[f.ID] = i
	}

	return forEachPage(ctx, q, pageSize,
		`SELECT owner_kind, owner_id, attribute_group_id, required, inherited
		 FROM attribute_group_bindings ORDER BY owner_kind, owner_id, position, attribute_group_id LIMIT $1 OFFSET $2`,
		func(rows *sql.Rows) error {
			var ownerKind, ownerID string
			var b catalog.AttributeGroupBinding
			if err := rows.Scan(&ownerKind, &ownerID, &b.AttributeGroupID, &b.Required, &b.Inherited); err != nil {
				return err
			}
			switch ownerKind {
			case "item_type":
				if i, ok := itemTypes[ownerID]; ok {
					it := &snap.ItemTypes[i]
					it.AttributeGroupIDs = append(it.AttributeGroupIDs, b.AttributeGroupID)
					it.Bindings = append(it.Bindings, b)
				}
			case "category":
				if i, ok := categories[ownerID]; ok {
					c := &snap.Categories[i]
					c.AttributeGroupIDs = append(c.AttributeGroupIDs, b.AttributeGroupID)
					c.Bindings = append(c.Bindings, b)
				}
			case "family":
				if i, ok := families[ownerID]; ok {
					f := &snap.Families[i]
					f.AttributeGroupIDs = append(f.AttributeGroupIDs, b.AttributeGroupID)
					f.Bindings = append(f.Bindings, b)
				}
			default:
				return fmt.Errorf("unknown binding owner kind %q for owner %q", ownerKind, ownerID)
			}
			return nil
		})
}
