package membership

import (
	"strconv"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/group"
)

// ToDomainGroup converts a downstream membership to the group it names. The
// membership role is not part of the domain.
func ToDomainGroup(dto MembershipDTO) group.Group {
	return group.Group{
		ID:    strconv.FormatInt(dto.GroupID, 10),
		Label: dto.Label,
		Type:  dto.GroupType,
	}
}

// ToDomainGroups converts a membership list. The result is never nil so an
// entity without groups is distinguishable from a failed lookup.
func ToDomainGroups(dto MembershipListResponseDTO) []group.Group {
	groups := make([]group.Group, 0, len(dto.Memberships))
	seen := make(map[int64]bool, len(dto.Memberships))
	for _, m := range dto.Memberships {
		if seen[m.GroupID] {
			continue
		}
		seen[m.GroupID] = true
		groups = append(groups, ToDomainGroup(m))
	}
	return groups
}
