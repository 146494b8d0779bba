package clone

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	appctx "github.com/jsamuelsen11/quick-node-clone/internal/app/context"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// Setting keys read from the module settings namespace.
const (
	SettingTitlePrefix = "text_to_prepend_to_title"
	SettingCloneStatus = "clone_status"

	excludePrefix = "exclude"
)

// Exclusion scopes.
const (
	ScopeNode      = "node"
	ScopeParagraph = "paragraph"
)

// exclusion is the memoized result of one policy lookup.
type exclusion struct {
	fields     []string
	configured bool
}

// PolicyResolver reads clone policy from the settings namespace.
type PolicyResolver struct {
	settings ports.SettingsReader
}

// NewPolicyResolver creates a PolicyResolver over settings.
func NewPolicyResolver(settings ports.SettingsReader) *PolicyResolver {
	return &PolicyResolver{settings: settings}
}

// ExcludedFields returns the fields configured under exclude.<scope>.<bundle>.
// The list is returned as configured. configured is false when the key is
// absent, which callers treat as "exclude nothing"; a configured empty list
// returns (empty, true).
//
// Lookups are memoized in the request context when ctx carries one.
func (p *PolicyResolver) ExcludedFields(ctx context.Context, scope, bundle string) ([]string, bool) {
	key := strings.Join([]string{excludePrefix, scope, bundle}, ".")

	ex, _ := appctx.GetOrFetch(appctx.FromContext(ctx), "policy:"+key, func(context.Context) (exclusion, error) {
		raw, ok := p.settings.Get(key)
		if !ok {
			return exclusion{}, nil
		}
		return exclusion{fields: toStrings(raw), configured: true}, nil
	})
	return ex.fields, ex.configured
}

// TitlePrefix returns the text prepended to cloned titles, or "". The
// configured value is used verbatim, surrounding whitespace included.
func (p *PolicyResolver) TitlePrefix() string {
	raw, ok := p.settings.Get(SettingTitlePrefix)
	if !ok || raw == nil {
		return ""
	}
	return fmt.Sprint(raw)
}

// KeepStatus reports whether clones keep the original's publish status.
// Values arriving from the environment are strings and are parsed.
func (p *PolicyResolver) KeepStatus() bool {
	raw, ok := p.settings.Get(SettingCloneStatus)
	if !ok {
		return false
	}
	switch v := raw.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	default:
		return false
	}
}

func toStrings(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}
