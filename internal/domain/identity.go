package domain

// IdentityKind discriminates cart ownership.
type IdentityKind string

const (
	IdentityUser  IdentityKind = "user"
	IdentityGuest IdentityKind = "guest"
)

// Identity is the resolved owner of the current request: an authenticated
// user or an anonymous guest. Modeling the owner as a tagged union keeps the
// "exactly one owner" invariant structural instead of two nullable IDs.
type Identity struct {
	Kind IdentityKind
	ID   string
}

// UserIdentity returns an identity for an authenticated user.
func UserIdentity(id string) Identity {
	return Identity{Kind: IdentityUser, ID: id}
}

// GuestIdentity returns an identity for an anonymous guest session.
func GuestIdentity(id string) Identity {
	return Identity{Kind: IdentityGuest, ID: id}
}

// IsUser reports whether the identity belongs to an authenticated user.
func (i Identity) IsUser() bool {
	return i.Kind == IdentityUser
}

// IsZero reports whether the identity is unresolved.
func (i Identity) IsZero() bool {
	return i.ID == ""
}
