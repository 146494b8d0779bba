// Package group holds the group associations of content entities. The
// cloning core passes them through to form consumers without interpreting
// them.
package group

// Group is a membership container an entity belongs to.
type Group struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}
