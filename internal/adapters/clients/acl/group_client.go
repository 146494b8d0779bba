package acl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/clients/acl/membership"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/group"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/httpclient"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.GroupLookup   = (*GroupClient)(nil)
	_ ports.HealthChecker = (*GroupClient)(nil)
)

// GroupClient is the outbound adapter for the group-association API. It
// implements [ports.GroupLookup].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retries and tracing for every call.
type GroupClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewGroupClient creates a GroupClient sending requests through client,
// whose base URL points at the group-association API root.
func NewGroupClient(client *httpclient.Client, logger *slog.Logger) *GroupClient {
	return &GroupClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GroupsForEntity fetches the groups e belongs to from
// GET /api/v1/groups?entity_type={kind}&entity_id={id}. An unsaved entity
// belongs to no group and is not looked up.
func (c *GroupClient) GroupsForEntity(ctx context.Context, e *entity.Entity) ([]group.Group, error) {
	if e.IsNew() {
		return []group.Group{}, nil
	}

	query := url.Values{}
	query.Set("entity_type", string(e.Kind()))
	query.Set("entity_id", e.ID())

	var dto membership.MembershipListResponseDTO
	if err := c.req.Get(ctx, "/api/v1/groups", query, &dto); err != nil {
		return nil, err
	}

	groups := membership.ToDomainGroups(dto)
	c.logger.DebugContext(ctx, "loaded group associations",
		slog.String("entity_type", string(e.Kind())),
		slog.String("entity_id", e.ID()),
		slog.Int("count", len(groups)),
	)
	return groups, nil
}

// Name returns the identifier used for health registration, tracing and
// metrics.
func (c *GroupClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the circuit breaker state without a network call.
// It describes downstream health, not readiness of this service: a failing
// lookup only means clones carry no groups.
func (c *GroupClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
