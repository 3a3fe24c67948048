package spesengine_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/UmitCamurcuk/spesengineDESING-sub007"
	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

// electronicsSnapshot builds the fixture used across resolver tests:
//
//	electronics > phones > smartphones  (categories)
//	mobile-devices > flagship-phones    (families, mobile-devices in phones)
//
// The product item type sits in electronics; each node contributes one
// attribute group.
func electronicsSnapshot() *spesengine.Snapshot {
	return &spesengine.Snapshot{
		ItemTypes: []catalog.ItemType{
			{
				ID:                "product",
				Name:              "Product",
				CategoryIDs:       []string{"electronics"},
				AttributeGroupIDs: []string{"general-info"},
				Bindings: []catalog.AttributeGroupBinding{
					{AttributeGroupID: "general-info", Required: true},
				},
			},
		},
		Categories: []catalog.Category{
			{ID: "electronics", AttributeGroupIDs: []string{"logistics"}},
			{ID: "phones", ParentCategoryID: "electronics", AttributeGroupIDs: []string{"connectivity"}},
			{ID: "smartphones", ParentCategoryID: "phones", AttributeGroupIDs: []string{"camera-specs"}},
		},
		Families: []catalog.Family{
			{ID: "mobile-devices", CategoryID: "phones", AttributeGroupIDs: []string{"battery"}},
			{ID: "flagship-phones", ParentFamilyID: "mobile-devices", AttributeGroupIDs: []string{"display"}},
		},
		AttributeGroups: []catalog.AttributeGroup{
			{ID: "general-info", Attributes: []catalog.Attribute{
				{ID: "a-name", Key: "name", Type: "text", Required: true},
				{ID: "a-sku", Key: "sku", Type: "text"},
			}},
			{ID: "logistics", Attributes: []catalog.Attribute{
				{ID: "a-weight", Key: "weight", Type: "number"},
			}},
			{ID: "connectivity", Attributes: []catalog.Attribute{
				{ID: "a-network", Key: "network", Type: "select"},
			}},
			{ID: "camera-specs", Attributes: []catalog.Attribute{
				{ID: "a-megapixels", Key: "megapixels", Type: "number"},
			}},
			{ID: "battery", Attributes: []catalog.Attribute{
				{ID: "a-capacity", Key: "capacity", Type: "number"},
			}},
			{ID: "display", Attributes: []catalog.Attribute{
				{ID: "a-resolution", Key: "resolution", Type: "text"},
			}},
		},
	}
}

func TestResolve_DescendantExpansion(t *testing.T) {
	engine := spesengine.NewEngine(electronicsSnapshot())

	res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// The item type seeds electronics; phones and smartphones are descendants,
	// the families attach through phones. Every group should contribute.
	for _, id := range []string{"general-info", "logistics", "connectivity", "camera-specs", "battery", "display"} {
		if !res.AttributeGroupIDs[id] {
			t.Errorf("expected group %q in result", id)
		}
	}
	if len(res.AttributeGroupIDs) != 6 {
		t.Errorf("expected 6 groups, got %d", len(res.AttributeGroupIDs))
	}
	if len(res.Attributes) != 7 {
		t.Errorf("expected 7 attributes, got %d", len(res.Attributes))
	}
}

func TestResolve_NoAncestorClimb(t *testing.T) {
	snap := electronicsSnapshot()
	// Re-home the item type onto the mid-level category. Its ancestor's group
	// must not contribute.
	snap.ItemTypes[0].CategoryIDs = []string{"phones"}

	engine := spesengine.NewEngine(snap)
	res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if res.AttributeGroupIDs["logistics"] {
		t.Error("ancestor category group should not contribute")
	}
	for _, id := range []string{"general-info", "connectivity", "camera-specs", "battery", "display"} {
		if !res.AttributeGroupIDs[id] {
			t.Errorf("expected group %q in result", id)
		}
	}
}

func TestResolve_LinkedItemTypeSeedsCategory(t *testing.T) {
	snap := electronicsSnapshot()
	snap.ItemTypes[0].CategoryIDs = nil
	// The category claims the item type instead of the reverse.
	snap.Categories[2].LinkedItemTypeIDs = []string{"product"} // smartphones

	engine := spesengine.NewEngine(snap)
	res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !res.AttributeGroupIDs["camera-specs"] {
		t.Error("category linking the item type should seed expansion")
	}
	if res.AttributeGroupIDs["connectivity"] || res.AttributeGroupIDs["logistics"] {
		t.Error("ancestors of the linking category should not contribute")
	}
}

func TestResolve_LinkedFamilySeeds(t *testing.T) {
	snap := electronicsSnapshot()
	snap.ItemTypes[0].CategoryIDs = nil
	snap.ItemTypes[0].LinkedFamilyIDs = []string{"flagship-phones"}

	engine := spesengine.NewEngine(snap)
	res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !res.AttributeGroupIDs["display"] {
		t.Error("directly linked family should contribute")
	}
	if res.AttributeGroupIDs["battery"] {
		t.Error("parent family should not contribute without its own seed")
	}
}

func TestResolve_DuplicateGroupFirstBindingWins(t *testing.T) {
	snap := electronicsSnapshot()
	// Both the item type and a category bind the same group with conflicting
	// flags. The item type contributes first.
	snap.Categories[0].AttributeGroupIDs = append(snap.Categories[0].AttributeGroupIDs, "general-info")
	snap.Categories[0].Bindings = []catalog.AttributeGroupBinding{
		{AttributeGroupID: "general-info", Required: false, Inherited: true},
	}

	engine := spesengine.NewEngine(snap)
	res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var binding catalog.AttributeGroupBinding
	found := false
	for _, b := range res.Bindings {
		if b.AttributeGroupID == "general-info" {
			if found {
				t.Fatal("group should appear once in bindings")
			}
			binding = b
			found = true
		}
	}
	if !found {
		t.Fatal("expected general-info binding")
	}
	if !binding.Required || binding.Inherited {
		t.Errorf("first-seen binding should win, got %+v", binding)
	}

	// Attribute flattening dedups too.
	seen := map[string]int{}
	for _, a := range res.Attributes {
		seen[a.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("attribute %q appears %d times", id, n)
		}
	}
}

func TestResolve_StaleGroupDroppedSilently(t *testing.T) {
	snap := electronicsSnapshot()
	snap.ItemTypes[0].AttributeGroupIDs = append(snap.ItemTypes[0].AttributeGroupIDs, "deleted-group")

	engine := spesengine.NewEngine(snap)
	res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if res.AttributeGroupIDs["deleted-group"] {
		t.Error("stale group id should not appear in the result set")
	}
	for _, b := range res.Bindings {
		if b.AttributeGroupID == "deleted-group" {
			t.Error("stale group id should not appear in bindings")
		}
	}
	if !res.AttributeGroupIDs["general-info"] {
		t.Error("valid groups should still resolve alongside a stale id")
	}
}

func TestResolve_BindingOnlyGroupContributes(t *testing.T) {
	snap := electronicsSnapshot()
	// Group named in bindings but absent from the parallel id list.
	snap.ItemTypes[0].AttributeGroupIDs = nil
	snap.ItemTypes[0].Bindings = []catalog.AttributeGroupBinding{
		{AttributeGroupID: "general-info", Required: true},
	}
	snap.ItemTypes[0].CategoryIDs = nil

	engine := spesengine.NewEngine(snap)
	res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !res.AttributeGroupIDs["general-info"] {
		t.Error("binding-only group should contribute")
	}
}

func TestResolve_Deterministic(t *testing.T) {
	engine := spesengine.NewEngine(electronicsSnapshot())
	req := spesengine.ResolutionRequest{ItemTypeID: "product"}

	first, err := engine.ResolveRequest(req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := engine.ResolveRequest(req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated resolution should yield identical results, including order")
	}
}

func TestResolve_OrderIndependentSet(t *testing.T) {
	base := spesengine.NewEngine(electronicsSnapshot())
	want, err := base.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		snap := electronicsSnapshot()
		rng.Shuffle(len(snap.Categories), func(a, b int) {
			snap.Categories[a], snap.Categories[b] = snap.Categories[b], snap.Categories[a]
		})
		rng.Shuffle(len(snap.Families), func(a, b int) {
			snap.Families[a], snap.Families[b] = snap.Families[b], snap.Families[a]
		})

		engine := spesengine.NewEngine(snap)
		got, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if !reflect.DeepEqual(got.AttributeGroupIDs, want.AttributeGroupIDs) {
			t.Fatalf("shuffle %d changed the group set: got %v, want %v", i, got.AttributeGroupIDs, want.AttributeGroupIDs)
		}
	}
}

func TestResolve_CyclicHierarchyTerminates(t *testing.T) {
	snap := electronicsSnapshot()
	// Corrupt the forest: electronics becomes a child of smartphones.
	snap.Categories[0].ParentCategoryID = "smartphones"

	engine := spesengine.NewEngine(snap)
	res, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// The cycle collapses to one component; every member contributes once.
	for _, id := range []string{"logistics", "connectivity", "camera-specs"} {
		if !res.AttributeGroupIDs[id] {
			t.Errorf("cycle member group %q should contribute", id)
		}
	}
}

func TestResolveRequest_UnknownItemType(t *testing.T) {
	engine := spesengine.NewEngine(electronicsSnapshot())

	_, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "ghost"})
	if err == nil {
		t.Fatal("expected error for unknown item type")
	}
	if !spesengine.IsUnknownItemTypeErr(err) {
		t.Error("expected IsUnknownItemTypeErr to return true")
	}
}

func TestResolve_EmptySnapshot(t *testing.T) {
	engine := spesengine.NewEngine(nil)

	res := engine.Resolve(catalog.ItemType{ID: "anything"})
	if len(res.AttributeGroupIDs) != 0 || len(res.Bindings) != 0 || len(res.Attributes) != 0 {
		t.Errorf("empty snapshot should resolve to empty result, got %+v", res)
	}

	if _, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "anything"}); err == nil {
		t.Error("empty snapshot should report unknown item type")
	}
}

func TestResolve_RequestSelectionDoesNotAlterAttributes(t *testing.T) {
	engine := spesengine.NewEngine(electronicsSnapshot())

	plain, err := engine.ResolveRequest(spesengine.ResolutionRequest{ItemTypeID: "product"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	scoped, err := engine.ResolveRequest(spesengine.ResolutionRequest{
		ItemTypeID: "product",
		CategoryID: "smartphones",
		FamilyID:   "flagship-phones",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !reflect.DeepEqual(plain, scoped) {
		t.Error("category/family selection should only scope rule matching, not attribute resolution")
	}
}
