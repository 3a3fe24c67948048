package catalog

import (
	"encoding/json"
	"fmt"
)

// UserReference identifies a user with display metadata attached.
type UserReference struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UserRef is a tagged reference to a user on entity audit fields.
//
// Upstream catalog payloads carry user references in two shapes: a bare id
// string, or a full user record. UserRef models that as an explicit variant
// rather than a dynamic union: AnonymousUser for the id-only form, KnownUser
// when the full record is present. The zero UserRef means "no user recorded".
type UserRef struct {
	id    string
	user  UserReference
	known bool
}

// AnonymousUser returns a UserRef carrying only an id.
func AnonymousUser(id string) UserRef {
	return UserRef{id: id}
}

// KnownUser returns a UserRef carrying a full user record.
func KnownUser(u UserReference) UserRef {
	return UserRef{id: u.ID, user: u, known: true}
}

// ID returns the user id regardless of variant.
func (r UserRef) ID() string {
	return r.id
}

// Known reports whether the full user record is present, and returns it.
func (r UserRef) Known() (UserReference, bool) {
	return r.user, r.known
}

// IsZero reports whether no user is recorded. Used by encoding/json's
// omitzero handling on entity audit fields.
func (r UserRef) IsZero() bool {
	return r.id == "" && !r.known
}

// String returns the id, or "id <name>" for known users.
func (r UserRef) String() string {
	if r.known && r.user.Name != "" {
		return fmt.Sprintf("%s <%s>", r.id, r.user.Name)
	}
	return r.id
}

// MarshalJSON writes the bare id for anonymous references and the full
// record for known ones, matching the upstream payload shapes.
func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.known {
		return json.Marshal(r.user)
	}
	return json.Marshal(r.id)
}

// UnmarshalJSON accepts either a bare id string or a user record object.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = AnonymousUser(id)
		return nil
	}

	var u UserReference
	if err := json.Unmarshal(data, &u); err != nil {
		return fmt.Errorf("user reference is neither id string nor record: %w", err)
	}
	*r = KnownUser(u)
	return nil
}
