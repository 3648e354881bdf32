// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package authz

import "context"

// Organizer is a staff record. Organizers carry a Role.
type Organizer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	GcpID     string `json:"gcp_id"`
	Privilege Role   `json:"privilege"`
}

// User is a participant record. Users have no role of their own.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	GcpID     string `json:"gcp_id"`
}

// Identity is the caller bound to a request after authentication. Either
// kind may be absent, but an Identity produced by the authenticator always
// has at least one.
type Identity struct {
	// Subject is the identity provider's id for the caller.
	Subject string `json:"subject"`
	// Organizer is set when the subject has a staff record.
	Organizer *Organizer `json:"organizer,omitempty"`
	// User is set when the subject has a participant record.
	User *User `json:"user,omitempty"`
}

// EffectiveRole is the role used for policy decisions: the organizer's
// privilege when present, RoleNone otherwise. Unknown privileges rank as
// RoleNone.
func (i *Identity) EffectiveRole() Role {
	if i == nil || i.Organizer == nil {
		return RoleNone
	}

	if !i.Organizer.Privilege.Valid() {
		return RoleNone
	}

	return i.Organizer.Privilege
}

// IsOrganizer reports whether the identity has a staff record.
func (i *Identity) IsOrganizer() bool {
	return i != nil && i.Organizer != nil
}

// IsUser reports whether the identity has a participant record.
func (i *Identity) IsUser() bool {
	return i != nil && i.User != nil
}

// Kinds lists the record kinds present on the identity.
func (i *Identity) Kinds() []string {
	kinds := make([]string, 0, 2)
	if i.IsOrganizer() {
		kinds = append(kinds, "organizer")
	}
	if i.IsUser() {
		kinds = append(kinds, "user")
	}

	return kinds
}

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(
	ctx context.Context,
	id *Identity,
) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity bound to ctx, if any.
func FromContext(
	ctx context.Context,
) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok && id != nil
}
