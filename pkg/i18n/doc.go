// Package i18n resolves message keys to localized strings. It supplies the
// messages of schema validators and of any other user-facing text.
//
// Catalogs are nested maps loaded through a TranslationAdapter: MapAdapter
// serves them from memory, FileAdapter reads one file, and DirectoryAdapter
// reads every YAML or JSON file of a directory on disk or of an fs.FS such as
// an embed.FS. A file named after a language (en.yaml, pt_BR.json) holds
// that language's catalog; any other file maps languages to catalogs.
//
//	adapter := i18n.NewDirectoryAdapter(i18n.NewMultiParser(), "./locale", logger)
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//
//	msg := translator.T("fr", "VALIDATE.REQUIRED", map[string]any{"self": "email"})
//
// Keys are dot paths into the catalog; a key stored literally with dots
// takes precedence. Placeholders use the {{name}} form. A missing key is
// looked up in the base language and then in the default language before
// falling back to the key itself.
//
// Locale binds a translator to one language and can be passed wherever a
// validator.Translator is expected.
package i18n
