package membership

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/group"
)

func TestToDomainGroup(t *testing.T) {
	t.Parallel()

	got := ToDomainGroup(MembershipDTO{GroupID: 12, Label: "Editors", GroupType: "team", Role: "member"})
	want := group.Group{ID: "12", Label: "Editors", Type: "team"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToDomainGroup() mismatch (-want +got):\n%s", diff)
	}
}

func TestToDomainGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  MembershipListResponseDTO
		want []group.Group
	}{
		{
			name: "empty list is not nil",
			dto:  MembershipListResponseDTO{},
			want: []group.Group{},
		},
		{
			name: "keeps downstream order",
			dto: MembershipListResponseDTO{Memberships: []MembershipDTO{
				{GroupID: 3, Label: "Marketing", GroupType: "department"},
				{GroupID: 1, Label: "Editors", GroupType: "team"},
			}, Count: 2},
			want: []group.Group{
				{ID: "3", Label: "Marketing", Type: "department"},
				{ID: "1", Label: "Editors", Type: "team"},
			},
		},
		{
			name: "one group per membership role",
			dto: MembershipListResponseDTO{Memberships: []MembershipDTO{
				{GroupID: 1, Label: "Editors", GroupType: "team", Role: "owner"},
				{GroupID: 1, Label: "Editors", GroupType: "team", Role: "member"},
			}, Count: 2},
			want: []group.Group{{ID: "1", Label: "Editors", Type: "team"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToDomainGroups(tt.dto)
			if got == nil {
				t.Fatal("ToDomainGroups() returned nil")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToDomainGroups() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
