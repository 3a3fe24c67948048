package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

func TestUserRef_Anonymous(t *testing.T) {
	r := catalog.AnonymousUser("u-1")

	if r.ID() != "u-1" {
		t.Errorf("ID() = %q, want u-1", r.ID())
	}
	if _, known := r.Known(); known {
		t.Error("anonymous ref should not be known")
	}
	if r.IsZero() {
		t.Error("anonymous ref with id should not be zero")
	}
	if r.String() != "u-1" {
		t.Errorf("String() = %q, want u-1", r.String())
	}
}

func TestUserRef_Known(t *testing.T) {
	r := catalog.KnownUser(catalog.UserReference{ID: "u-2", Name: "Ada", Email: "ada@example.com"})

	if r.ID() != "u-2" {
		t.Errorf("ID() = %q, want u-2", r.ID())
	}
	u, known := r.Known()
	if !known {
		t.Fatal("known ref should report known")
	}
	if u.Name != "Ada" || u.Email != "ada@example.com" {
		t.Errorf("unexpected record: %+v", u)
	}
	if r.String() != "u-2 <Ada>" {
		t.Errorf("String() = %q, want %q", r.String(), "u-2 <Ada>")
	}
}

func TestUserRef_Zero(t *testing.T) {
	var r catalog.UserRef
	if !r.IsZero() {
		t.Error("zero UserRef should report IsZero")
	}
	if r.ID() != "" {
		t.Errorf("zero ref id = %q, want empty", r.ID())
	}
}

func TestUserRef_MarshalAnonymous(t *testing.T) {
	data, err := json.Marshal(catalog.AnonymousUser("u-3"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"u-3"` {
		t.Errorf("anonymous ref should marshal to bare id, got %s", data)
	}
}

func TestUserRef_MarshalKnown(t *testing.T) {
	data, err := json.Marshal(catalog.KnownUser(catalog.UserReference{ID: "u-4", Name: "Grace"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"u-4","name":"Grace"}`
	if string(data) != want {
		t.Errorf("known ref marshal = %s, want %s", data, want)
	}
}

func TestUserRef_UnmarshalString(t *testing.T) {
	var r catalog.UserRef
	if err := json.Unmarshal([]byte(`"u-5"`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID() != "u-5" {
		t.Errorf("ID() = %q, want u-5", r.ID())
	}
	if _, known := r.Known(); known {
		t.Error("id string should produce an anonymous ref")
	}
}

func TestUserRef_UnmarshalRecord(t *testing.T) {
	var r catalog.UserRef
	if err := json.Unmarshal([]byte(`{"id":"u-6","name":"Linus"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	u, known := r.Known()
	if !known {
		t.Fatal("record should produce a known ref")
	}
	if u.ID != "u-6" || u.Name != "Linus" {
		t.Errorf("unexpected record: %+v", u)
	}
}

func TestUserRef_UnmarshalInvalid(t *testing.T) {
	var r catalog.UserRef
	if err := json.Unmarshal([]byte(`42`), &r); err == nil {
		t.Error("expected error for non-string non-object payload")
	}
}

func TestUserRef_OmitZeroOnEntities(t *testing.T) {
	data, err := json.Marshal(catalog.Category{ID: "phones"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	if got != `{"id":"phones"}` {
		t.Errorf("zero audit fields should be omitted, got %s", got)
	}
}
