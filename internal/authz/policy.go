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

// Predicate decides an escape hatch from the caller's identity. Predicates
// must not perform I/O.
type Predicate func(id *Identity) bool

// EscapeHatch grants access below the policy minimum to callers whose
// effective role equals Role and for whom Predicate holds.
type EscapeHatch struct {
	Role      Role
	Predicate Predicate
}

// Policy is the access rule for a single route.
type Policy struct {
	// Minimum is the lowest role admitted unconditionally. An empty or
	// unknown Minimum admits nobody on rank; only EscapeHatches apply.
	Minimum Role
	// EscapeHatches are evaluated in order when Minimum is not met.
	EscapeHatches []EscapeHatch
}

// MinimumRole returns a policy admitting role and everything above it.
func MinimumRole(
	role Role,
) Policy {
	return Policy{Minimum: role}
}

// EscapeHatchesOnly returns a policy with no role threshold.
func EscapeHatchesOnly(
	hatches ...EscapeHatch,
) Policy {
	return Policy{EscapeHatches: append([]EscapeHatch(nil), hatches...)}
}

// Or returns a copy of p with an escape hatch appended.
func (p Policy) Or(
	role Role,
	predicate Predicate,
) Policy {
	hatches := make([]EscapeHatch, 0, len(p.EscapeHatches)+1)
	hatches = append(hatches, p.EscapeHatches...)
	hatches = append(hatches, EscapeHatch{Role: role, Predicate: predicate})

	return Policy{
		Minimum:       p.Minimum,
		EscapeHatches: hatches,
	}
}

// Check reports whether id satisfies policy. The minimum role is checked
// first and short-circuits; escape hatches are then tried in order and the
// first match wins. A nil identity is treated as RoleNone. The threshold
// is skipped when Minimum is not a known role.
func Check(
	id *Identity,
	policy Policy,
) bool {
	role := id.EffectiveRole()

	if policy.Minimum.Valid() && role.AtLeast(policy.Minimum) {
		return true
	}

	for _, hatch := range policy.EscapeHatches {
		if hatch.Predicate == nil || role != hatch.Role {
			continue
		}

		if hatch.Predicate(id) {
			return true
		}
	}

	return false
}
