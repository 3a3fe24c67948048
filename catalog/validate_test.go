package catalog_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

func TestDetectCycles_Forest(t *testing.T) {
	links := []catalog.ParentLink{
		{ID: "electronics"},
		{ID: "phones", ParentID: "electronics"},
		{ID: "smartphones", ParentID: "phones"},
		{ID: "furniture"},
	}

	if err := catalog.DetectCycles(links); err != nil {
		t.Fatalf("expected no error for a valid forest, got: %v", err)
	}
}

func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	links := []catalog.ParentLink{
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"}, // cycle!
	}

	err := catalog.DetectCycles(links)
	if err == nil {
		t.Fatal("expected error for two-node cycle")
	}
	if !catalog.IsCyclicHierarchyErr(err) {
		t.Error("expected IsCyclicHierarchyErr to return true")
	}
	if !strings.Contains(err.Error(), "->") {
		t.Errorf("error should render the cycle path, got: %s", err.Error())
	}
}

func TestDetectCycles_ThreeNodeCycle(t *testing.T) {
	// electronics -> phones -> smartphones -> electronics
	links := []catalog.ParentLink{
		{ID: "electronics", ParentID: "smartphones"},
		{ID: "phones", ParentID: "electronics"},
		{ID: "smartphones", ParentID: "phones"},
	}

	err := catalog.DetectCycles(links)
	if err == nil {
		t.Fatal("expected error for three-node cycle")
	}
	if !catalog.IsCyclicHierarchyErr(err) {
		t.Error("expected IsCyclicHierarchyErr to return true")
	}
	for _, id := range []string{"electronics", "phones", "smartphones"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("cycle message should mention %q, got: %s", id, err.Error())
		}
	}
}

func TestDetectCycles_CycleBelowValidChain(t *testing.T) {
	// A valid chain hanging off a cyclic core must still be detected.
	links := []catalog.ParentLink{
		{ID: "leaf", ParentID: "mid"},
		{ID: "mid", ParentID: "loop1"},
		{ID: "loop1", ParentID: "loop2"},
		{ID: "loop2", ParentID: "loop1"},
	}

	if err := catalog.DetectCycles(links); err == nil {
		t.Fatal("expected error when a chain leads into a cycle")
	}
}

func TestDetectCycles_SelfParentIgnored(t *testing.T) {
	// Self-parented nodes are normalized to roots by NewIndex; DetectCycles
	// treats them the same way.
	links := []catalog.ParentLink{
		{ID: "loop", ParentID: "loop"},
		{ID: "child", ParentID: "loop"},
	}

	if err := catalog.DetectCycles(links); err != nil {
		t.Fatalf("self-parented node should not report a cycle, got: %v", err)
	}
}

func TestDetectCycles_DanglingParent(t *testing.T) {
	// Parent points at a node with no link of its own. Stale, not cyclic.
	links := []catalog.ParentLink{
		{ID: "orphan", ParentID: "ghost"},
	}

	if err := catalog.DetectCycles(links); err != nil {
		t.Fatalf("dangling parent reference should not report a cycle, got: %v", err)
	}
}

func TestDetectCycles_Empty(t *testing.T) {
	if err := catalog.DetectCycles(nil); err != nil {
		t.Fatalf("expected no error for empty input, got: %v", err)
	}
}

func TestIsCyclicHierarchyErr(t *testing.T) {
	wrapped := fmt.Errorf("loading catalog: %w", catalog.ErrCyclicHierarchy)
	if !catalog.IsCyclicHierarchyErr(wrapped) {
		t.Error("IsCyclicHierarchyErr should return true for wrapped ErrCyclicHierarchy")
	}
	if catalog.IsCyclicHierarchyErr(errors.New("other error")) {
		t.Error("IsCyclicHierarchyErr should return false for other errors")
	}
}

func TestStaleReference_String(t *testing.T) {
	ref := catalog.StaleReference{
		Owner: "itemType:product",
		Field: "attributeGroupIds",
		ID:    "ghost-group",
	}

	got := ref.String()
	want := `itemType:product.attributeGroupIds references missing "ghost-group"`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
