// Package membership translates the group-association API's membership
// resources into domain groups.
package membership

// MembershipDTO matches the downstream Membership schema.
type MembershipDTO struct {
	GroupID   int64  `json:"group_id"`
	Label     string `json:"label"`
	GroupType string `json:"group_type"`
	Role      string `json:"role,omitempty"`
}

// MembershipListResponseDTO matches the downstream MembershipListResponse
// schema.
type MembershipListResponseDTO struct {
	Memberships []MembershipDTO `json:"memberships"`
	Count       int64           `json:"count"`
}
