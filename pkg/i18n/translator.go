package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/fortress/pkg/logger"
)

// Translator resolves message keys to localized strings. It is safe for
// concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a key is missing from the
// requested language.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = NormalizeLanguage(lang)
		}
	}
}

// WithFallbackToKey makes T return the key when no translation exists.
// Enabled by default; when disabled T returns an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs every missing key at warn level.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// NewTranslator loads the catalogs of adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload replaces the catalogs with a fresh load from the adapter.
func (t *Translator) Reload(ctx context.Context) error {
	loaded, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	translations := make(map[string]map[string]any, len(loaded))
	for lang, catalog := range loaded {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if catalog == nil {
			return fmt.Errorf("%w: nil catalog for language %s", ErrInvalidCatalog, lang)
		}
		mergeCatalog(translations, lang, catalog)
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return nil
}

// SupportedLanguages returns the loaded languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := lookup(t.translations[NormalizeLanguage(lang)], key)
	return ok
}

// T translates key into lang and substitutes {{name}} placeholders from
// params. Missing keys are looked up in the base language ("pt" for
// "pt-BR") and then the default language. When nothing is found the key is
// returned, or an empty string if key fallback is disabled.
//
//	// "welcome": "Hello, {{name}}!"
//	msg := translator.T("en", "welcome", map[string]any{"name": "John"})
func (t *Translator) T(lang, key string, params map[string]any) string {
	tmpl, ok := t.resolve(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", logger.Lang(lang), logger.Key(key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return ReplacePlaceholders(tmpl, params)
}

// Td translates key, using defaultValue when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, params map[string]any) string {
	tmpl, ok := t.resolve(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return ReplacePlaceholders(tmpl, params)
}

// Tc translates key into the locale stored in ctx, or the default language.
func (t *Translator) Tc(ctx context.Context, key string, params map[string]any) string {
	lang := GetLocale(ctx)
	if lang == "" {
		lang = t.defaultLang
	}
	return t.T(lang, key, params)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, candidate := range t.candidates(lang) {
		catalog, ok := t.translations[candidate]
		if !ok {
			continue
		}
		val, ok := lookup(catalog, key)
		if !ok {
			continue
		}
		if s, ok := val.(string); ok {
			return s, true
		}
		if t.missingLogMode {
			t.logger.Warn("translation is not a string",
				logger.Lang(candidate),
				logger.Key(key),
				slog.String("type", fmt.Sprintf("%T", val)))
		}
	}
	return "", false
}

func (t *Translator) candidates(lang string) []string {
	normalized := NormalizeLanguage(lang)
	out := make([]string, 0, 3)
	for _, c := range []string{normalized, BaseLanguage(normalized), t.defaultLang} {
		if c != "" && !contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// lookup walks a dot-separated key through nested maps. A full key stored
// literally, such as "VALIDATE.REQUIRED", takes precedence over the path.
func lookup(m map[string]any, key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	if val, ok := m[key]; ok {
		return val, true
	}

	current := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var placeholderRegex = regexp.MustCompile(`\{\{\s*([\w.\-]+)\s*\}\}`)

// ReplacePlaceholders replaces {{name}} placeholders with values from
// params. Unknown placeholders are kept.
func ReplacePlaceholders(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := placeholderRegex.FindStringSubmatch(match)[1]
		val, ok := params[name]
		if !ok {
			return match
		}
		return formatValue(val)
	})
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = formatValue(item)
		}
		return strings.Join(items, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// ExportJSON returns the catalog of lang as JSON, for client-side use.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[NormalizeLanguage(lang)]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	bytes, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(bytes), nil
}

// Locale binds the translator to one language.
func (t *Translator) Locale(lang string) *Locale {
	return &Locale{translator: t, lang: lang}
}

// Locale is a Translator bound to a language. It satisfies the message
// translator interface expected by the validator package.
type Locale struct {
	translator *Translator
	lang       string
}

// Lang returns the bound language.
func (l *Locale) Lang() string {
	return l.lang
}

// Translate resolves key in the bound language.
func (l *Locale) Translate(key string, params map[string]any) string {
	return l.translator.T(l.lang, key, params)
}
