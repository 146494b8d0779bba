// Package clone deep-clones nodes. A clone owns fresh copies of the
// paragraphs and inline layout blocks of its source, keeps pointing at the
// same shared entities, and is handed to a form unsaved. Persistence happens
// when the form is submitted.
package clone

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	appctx "github.com/jsamuelsen11/quick-node-clone/internal/app/context"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/group"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/identity"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/telemetry"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// Compile-time check that Service implements ports.CloneService.
var _ ports.CloneService = (*Service)(nil)

// Service implements ports.CloneService.
type Service struct {
	store  ports.EntityStore
	forms  ports.FormBuilder
	policy *PolicyResolver

	ids             ports.IdentityGenerator
	groups          ports.GroupLookup
	translator      ports.Translator
	hooks           *Hooks
	metrics         *telemetry.Metrics
	tracer          trace.Tracer
	now             func() time.Time
	clearUnresolved bool
	logger          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithIdentityGenerator sets the generator for component UUIDs.
func WithIdentityGenerator(ids ports.IdentityGenerator) Option {
	return func(s *Service) { s.ids = ids }
}

// WithGroupLookup enables capturing the original's group associations.
func WithGroupLookup(groups ports.GroupLookup) Option {
	return func(s *Service) { s.groups = groups }
}

// WithTranslator sets the title translator.
func WithTranslator(t ports.Translator) Option {
	return func(s *Service) { s.translator = t }
}

// WithHooks sets the extension point registry.
func WithHooks(h *Hooks) Option {
	return func(s *Service) { s.hooks = h }
}

// WithMetrics enables clone metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithClearUnresolvedBlocks nulls the block pointers of inline components
// whose block could not be resolved, instead of leaving them as they were.
func WithClearUnresolvedBlocks(clear bool) Option {
	return func(s *Service) { s.clearUnresolved = clear }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a clone Service. store provides duplication, blank
// bundle defaults and form definitions; settings holds the clone policy;
// forms builds the form the clone is bound to.
func NewService(store ports.EntityStore, settings ports.SettingsReader, forms ports.FormBuilder, opts ...Option) *Service {
	s := &Service{
		store:      store,
		forms:      forms,
		policy:     NewPolicyResolver(settings),
		ids:        identity.New(),
		translator: untranslated{},
		hooks:      NewHooks(),
		tracer:     otel.Tracer("quick-node-clone/clone"),
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hooks returns the registry used by the service.
func (s *Service) Hooks() *Hooks {
	return s.hooks
}

// GetNode returns a stored node.
func (s *Service) GetNode(ctx context.Context, id string) (*entity.Entity, error) {
	node, err := s.store.Load(ctx, entity.KindNode, id)
	if err != nil {
		return nil, fmt.Errorf("loading node %s: %w", id, err)
	}
	return node, nil
}

// CloneByID loads node id and clones it.
func (s *Service) CloneByID(ctx context.Context, id string, req ports.CloneRequest) (*form.Handle, error) {
	node, err := s.GetNode(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load node for cloning",
			slog.String("operation", "CloneByID"),
			slog.String("node_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return s.Clone(ctx, node, req)
}

// Clone duplicates original with its owned paragraphs and inline blocks,
// applies the clone policy to every language variant and returns the form
// bound to the clone. original is never modified.
func (s *Service) Clone(ctx context.Context, original *entity.Entity, req ports.CloneRequest) (*form.Handle, error) {
	if err := validateRequest(original, req); err != nil {
		return nil, err
	}
	op := cmp.Or(req.Operation, form.OperationDefault)

	ctx, span := s.tracer.Start(ctx, "clone.Clone", trace.WithAttributes(
		attribute.String(string(telemetry.AttrEntityKind), string(original.Kind())),
		attribute.String(string(telemetry.AttrBundle), original.Bundle()),
	))
	defer span.End()

	s.logger.InfoContext(ctx, "cloning node",
		slog.String("node_id", original.ID()),
		slog.String("bundle", original.Bundle()),
		slog.String("operation", op),
	)

	start := time.Now()
	handle, err := s.clone(appctx.New(ctx), original, op, req)
	s.record(ctx, original, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "failed to clone node",
			slog.String("operation", "Clone"),
			slog.String("node_id", original.ID()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return handle, nil
}

func (s *Service) clone(rc *appctx.RequestContext, original *entity.Entity, op string, req ports.CloneRequest) (*form.Handle, error) {
	cloned, err := s.store.CreateDuplicate(rc, original)
	if err != nil {
		return nil, fmt.Errorf("duplicating node: %w", err)
	}
	s.resetAudit(cloned, req.ActorID)

	groups := s.loadGroups(rc, original)

	blank, err := s.store.CreateBlank(rc, cloned.Kind(), cloned.Bundle())
	if err != nil {
		return nil, fmt.Errorf("resolving bundle %s defaults: %w", cloned.Bundle(), err)
	}
	defaultStatus := blank.Get(entity.FieldStatus)

	var (
		bound      *entity.Entity
		paragraphs int
		components int
	)
	for _, lang := range cloned.Languages() {
		variant, _ := cloned.Translation(lang)

		paragraphs += s.duplicateOwnedSubEntities(rc, variant)
		components += s.rewriteLayout(rc, variant)
		s.hooks.clonedEntity(rc, variant, original)
		s.applyExclusions(rc, variant)
		s.applyTitle(variant)
		if !s.policy.KeepStatus() {
			variant.Set(entity.FieldStatus, slices.Clone(defaultStatus)...)
		}

		bound = variant
	}
	s.count(rc, cloned, paragraphs, components)

	def, err := s.store.FormDefinition(rc, cloned.Kind(), cloned.Bundle(), op)
	if err != nil {
		return nil, fmt.Errorf("resolving %s form for bundle %s: %w", op, cloned.Bundle(), err)
	}

	state := make(form.State, len(req.FormState)+1)
	maps.Copy(state, req.FormState)
	state[form.StateGroupsKey] = groups

	handle, err := s.forms.Build(rc, def, bound, state)
	if err != nil {
		return nil, fmt.Errorf("building %s form: %w", def.ID, err)
	}

	if req.Cleanup != nil {
		req.Cleanup(rc)
	}
	return handle, nil
}

func validateRequest(original *entity.Entity, req ports.CloneRequest) error {
	fields := make(map[string]string)
	if original == nil {
		fields["node"] = "is required"
	}
	if req.ActorID == "" {
		fields["actor_id"] = "is required"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// resetAudit makes the actor the owner of every variant and stamps the
// audit times with the current time.
func (s *Service) resetAudit(cloned *entity.Entity, actorID string) {
	now := s.now().Unix()
	for _, lang := range cloned.Languages() {
		variant, _ := cloned.Translation(lang)
		variant.SetValue(entity.FieldUID, actorID)
		variant.SetValue(entity.FieldCreated, now)
		variant.SetValue(entity.FieldChanged, now)
		variant.SetValue(entity.FieldRevisionTimestamp, now)
	}
}

// loadGroups captures the group associations of original for form hooks.
// A failing lookup yields no groups.
func (s *Service) loadGroups(ctx context.Context, original *entity.Entity) []group.Group {
	if s.groups == nil {
		return []group.Group{}
	}
	groups, err := s.groups.GroupsForEntity(ctx, original)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load group associations",
			slog.String("operation", "loadGroups"),
			slog.String("node_id", original.ID()),
			slog.Any("error", err),
		)
		return []group.Group{}
	}
	return groups
}

func (s *Service) applyExclusions(ctx context.Context, variant *entity.Entity) {
	excluded, _ := s.policy.ExcludedFields(ctx, string(variant.Kind()), variant.Bundle())
	for _, field := range excluded {
		variant.Clear(field)
	}
}

// applyTitle prepends the localized prefix and a space to the title.
func (s *Service) applyTitle(variant *entity.Entity) {
	prefix := s.policy.TitlePrefix()
	if prefix == "" {
		return
	}
	lang := variant.Language()
	title := variant.String(entity.FieldTitle)
	variant.SetValue(entity.FieldTitle, s.translator.Sprintf(lang, titleFormat, s.translator.Translate(lang, prefix), title))
}

func (s *Service) record(ctx context.Context, original *entity.Entity, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrBundle.String(original.Bundle()),
		telemetry.AttrResult.String(result),
	)
	s.metrics.CloneTotal.Add(ctx, 1, attrs)
	s.metrics.CloneDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func (s *Service) count(ctx context.Context, cloned *entity.Entity, paragraphs, components int) {
	if s.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrBundle.String(cloned.Bundle()))
	s.metrics.SubEntitiesCloned.Add(ctx, int64(paragraphs), attrs)
	s.metrics.ComponentsRewritten.Add(ctx, int64(components), attrs)
}

// titleFormat joins the prefix and the original title. Catalogs may reorder
// the two arguments for languages that place the prefix last.
const titleFormat = "%s %s"

// untranslated formats keys without a catalog.
type untranslated struct{}

func (untranslated) Translate(_, key string) string { return key }

func (untranslated) Sprintf(_, key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	return fmt.Sprintf(key, args...)
}
