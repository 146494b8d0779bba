// Package i18n localizes the strings the clone service writes into entities,
// backed by a golang.org/x/text message catalog built from configuration.
package i18n

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// Compile-time check that Translator implements ports.Translator.
var _ ports.Translator = (*Translator)(nil)

// Translator formats keys through a message catalog. Languages without a
// translation for a key fall back to their parent language, then to the key
// itself.
type Translator struct {
	catalog  *catalog.Builder
	messages map[language.Tag]map[string]string
	printers sync.Map // language code -> *message.Printer
}

// New builds a Translator from translations keyed by language code, then by
// source text. Keys may be fmt format strings; their translations may reorder
// arguments with explicit indexes such as %[2]s.
func New(translations map[string]map[string]string) (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	messages := make(map[language.Tag]map[string]string, len(translations))

	for _, lang := range slices.Sorted(maps.Keys(translations)) {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: i18n language %q: %v", domain.ErrConfiguration, lang, err)
		}
		if messages[tag] == nil {
			messages[tag] = make(map[string]string, len(translations[lang]))
		}
		for key, msg := range translations[lang] {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%w: i18n %s %q: %v", domain.ErrConfiguration, lang, key, err)
			}
			messages[tag][key] = msg
		}
	}

	return &Translator{catalog: b, messages: messages}, nil
}

// Translate returns the translation of key for lang without formatting it,
// so literal percent signs survive. Regional variants fall back to their
// parent language, then to key.
func (t *Translator) Translate(lang, key string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return key
	}
	for {
		if msg, ok := t.messages[tag][key]; ok {
			return msg
		}
		if tag.IsRoot() {
			return key
		}
		tag = tag.Parent()
	}
}

// Sprintf formats key for lang.
func (t *Translator) Sprintf(lang, key string, args ...any) string {
	return t.printer(lang).Sprintf(key, args...)
}

func (t *Translator) printer(lang string) *message.Printer {
	if p, ok := t.printers.Load(lang); ok {
		return p.(*message.Printer)
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	p, _ := t.printers.LoadOrStore(lang, message.NewPrinter(tag, message.Catalog(t.catalog)))
	return p.(*message.Printer)
}
