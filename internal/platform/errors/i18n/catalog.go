// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is the canonical source locale for error messages.
const BaseLocale = "en-US"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale  string
	printer *message.Printer
	codes   map[Code]struct{}
}

var (
	catalogsMu sync.RWMutex
	// catalogs holds one catalog per resolved locale.
	catalogs = map[string]*Catalog{}

	// sources lists the message templates shipped with the binary.
	sources = map[string]map[Code]string{
		BaseLocale: enUSMessages,
	}
)

// GetCatalog returns the catalog for the given locale.
// Locales are matched with BCP 47 rules, so "en" and "en-GB" resolve to
// en-US. Falls back to en-US if nothing matches.
func GetCatalog(locale string) *Catalog {
	resolved := resolveLocale(locale)
	if c, ok := lookupCatalog(resolved); ok {
		return c
	}
	return storeCatalogIfAbsent(resolved, NewCatalog(resolved, sources[resolved]))
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	if _, ok := c.codes[code]; !ok {
		return code
	}
	tmpl := c.printer.Sprintf(code)

	if metadata == nil {
		metadata = map[string]string{}
	}
	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a catalog for the given locale, replacing any
// existing one. Intended for init or single-threaded test setup.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
// Templates must not contain printf verbs; they are rendered with
// text/template after lookup.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	builder := catalog.NewBuilder(catalog.Fallback(tag))

	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	codes := make(map[Code]struct{}, len(messages))
	for _, key := range keys {
		// SetString only fails for malformed tags, which Parse already rejected.
		_ = builder.SetString(tag, key, messages[key])
		codes[key] = struct{}{}
	}
	return &Catalog{
		locale:  locale,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		codes:   codes,
	}
}

func resolveLocale(locale string) string {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		return BaseLocale
	}
	if _, ok := lookupCatalog(requested); ok {
		return requested
	}

	available := make([]string, 0, len(sources))
	for key := range sources {
		available = append(available, key)
	}
	sort.Strings(available)
	tags := make([]language.Tag, 0, len(available))
	for _, key := range available {
		tags = append(tags, language.MustParse(key))
	}

	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return BaseLocale
	}
	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return BaseLocale
	}
	return available[index]
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func storeCatalogIfAbsent(locale string, candidate *Catalog) *Catalog {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[locale]; ok {
		return existing
	}
	catalogs[locale] = candidate
	return candidate
}
