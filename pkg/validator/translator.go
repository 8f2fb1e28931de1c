package validator

// Translator resolves a message key and its parameters to a localized string.
type Translator interface {
	Translate(key string, params map[string]any) string
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(key string, params map[string]any) string

func (f TranslatorFunc) Translate(key string, params map[string]any) string {
	return f(key, params)
}

// keyTranslator returns the key itself.
type keyTranslator struct{}

func (keyTranslator) Translate(key string, _ map[string]any) string {
	return key
}
