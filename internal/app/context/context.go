// Package appctx provides the request-scoped context used by application
// services.
//
// A RequestContext memoizes lookups made while one node is cloned (policy
// lists, blank bundle defaults) and queues the writes that persist a
// submitted clone so they can be committed, or rolled back, together:
//
//	rc := appctx.New(ctx)
//
//	excluded, err := appctx.GetOrFetch(rc, "exclude.node.article", fetchPolicy)
//
//	rc.AddGroup(saveParagraphA, saveParagraphB)
//	rc.Stage("node:new", node, saveNode)
//
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when actions are staged on, or Commit is
// called on, a committed RequestContext.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when the same key was cached
// with a different type.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext embeds context.Context and adds memoization and a staged
// action queue. It belongs to one request. The cache is not safe for
// concurrent use; the action queue is.
type RequestContext struct {
	context.Context
	cache map[string]cacheEntry

	queueMu   sync.Mutex
	items     []actionItem
	committed bool
}

// cacheEntry stores a fetch result. Errors are cached too so a failing
// lookup is not repeated within the request.
type cacheEntry struct {
	value any
	err   error
}

type requestContextKey struct{}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns ctx itself when it is a RequestContext, else the one
// stored in ctx, else a new one wrapping ctx (background jobs, tests).
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.(*RequestContext); ok {
		return rc
	}
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the cached value for key or calls fetchFn and caches
// its result. The same key must always be used with the same T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Stage caches entity under key and queues action for Commit, so later
// GetOrFetch calls for key see the staged entity.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.cache[key] = cacheEntry{value: entity}
	rc.items = append(rc.items, &singleAction{action: action})
	return nil
}

// Execute runs action immediately. It does not take part in Commit or its
// rollback and works after Commit.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
