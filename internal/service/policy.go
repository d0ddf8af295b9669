package service

import "github.com/MKhiriev/go-blog-platform/models"

// OwnershipPolicy decides whether a caller may act on a protected resource.
// The rule is plain string identity: the caller's claimed user ID must equal
// the resource owner's ID. There are no roles and no delegation.
//
// The point in the operation where the policy runs is deliberately uneven:
// user detail and user delete check ownership before existence, while post
// operations check existence first. Each operation documents its own order;
// changing it changes which HTTP code a caller observes.
type OwnershipPolicy struct{}

// Authorize returns nil when claim identifies the owner of the resource,
// or [ErrNotResourceOwner] otherwise.
func (OwnershipPolicy) Authorize(resourceOwnerID string, claim models.Claims) error {
	if resourceOwnerID != claim.UserID {
		return ErrNotResourceOwner
	}

	return nil
}
