// Package i18n provides localized validation and interface messages backed by
// embedded TOML catalogs.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/hay-kot/formgate/internal/core/field"
)

// Supported language tags.
const (
	LangEN = "en"
	LangES = "es"
)

// Interface message ids.
const (
	MsgSubmit          = "submit"
	MsgReset           = "reset"
	MsgSubmittedBanner = "submitted_banner"
	MsgSubmitBlocked   = "submit_blocked"
)

//go:embed locales/*.toml
var localesFS embed.FS

// Catalog renders messages in one language. It implements field.Messages.
type Catalog struct {
	lang      string
	localizer *i18n.Localizer
}

var _ field.Messages = (*Catalog)(nil)

// Supported returns the sorted list of languages with an embedded catalog.
func Supported() []string {
	langs := []string{LangEN, LangES}
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether lang has an embedded catalog.
func IsSupported(lang string) bool {
	for _, l := range Supported() {
		if l == lang {
			return true
		}
	}
	return false
}

// New loads the embedded catalogs and returns a Catalog for lang.
func New(lang string) (*Catalog, error) {
	if !IsSupported(lang) {
		return nil, fmt.Errorf("language %q not supported", lang)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := localesFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", name, err)
		}
	}

	return &Catalog{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang),
	}, nil
}

// MustNew is like New but panics on error. Only use with a constant language.
func MustNew(lang string) *Catalog {
	c, err := New(lang)
	if err != nil {
		panic(err)
	}
	return c
}

// Lang returns the catalog language.
func (c *Catalog) Lang() string { return c.lang }

// Format renders a verdict. Valid verdicts render as the empty string.
func (c *Catalog) Format(v field.Verdict) string {
	if v.Valid() {
		return ""
	}

	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    v.Reason.String(),
		TemplateData: map[string]any{"Limit": v.Limit},
	})
	if err != nil {
		return field.DefaultMessages.Format(v)
	}
	return msg
}

// T renders an interface message by id, falling back to the id itself.
func (c *Catalog) T(id string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
