package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmitrymomot/fortress/pkg/logger"
)

// TranslationAdapter loads catalogs keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(a.Data))
	for lang, catalog := range a.Data {
		mergeCatalog(out, lang, catalog)
	}
	return out, nil
}

// ChainAdapter merges the catalogs of several adapters. Later adapters
// override earlier ones per key; nil adapters are ignored.
type ChainAdapter []TranslationAdapter

func (c ChainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any)
	for _, adapter := range c {
		if adapter == nil {
			continue
		}
		loaded, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, catalog := range loaded {
			mergeCatalog(out, lang, catalog)
		}
	}
	return out, nil
}

// FileAdapter loads a single translation file.
//
// A file named after a language, such as en.yaml or pt_BR.json, holds the
// catalog of that language. Any other file maps languages to catalogs.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	out := make(map[string]map[string]any)
	if err := parseInto(ctx, a.parser, filepath.Base(a.path), content, out); err != nil {
		return nil, fmt.Errorf("%s: %w", a.path, err)
	}
	return out, nil
}

// DirectoryAdapter loads every supported file of a directory.
// Catalogs of the same language are merged; later files win per key.
type DirectoryAdapter struct {
	fsys   fs.FS
	dir    string
	parser Parser
	logger *slog.Logger
}

// NewDirectoryAdapter reads translation files from a directory on disk.
// Returns nil if parser is nil or dir is empty.
func NewDirectoryAdapter(parser Parser, dir string, logger *slog.Logger) *DirectoryAdapter {
	if parser == nil || dir == "" {
		return nil
	}
	return &DirectoryAdapter{fsys: os.DirFS(dir), dir: ".", parser: parser, logger: logger}
}

// NewFSAdapter reads translation files from dir inside fsys, such as an
// embed.FS. Returns nil if parser or fsys is nil.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string, logger *slog.Logger) *DirectoryAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &DirectoryAdapter{fsys: fsys, dir: dir, parser: parser, logger: logger}
}

func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out := make(map[string]map[string]any)
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() || parserFor(a.parser, entry.Name()) == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			a.warn("skipping translation file", name, errors.Join(ErrFailedToReadFile, err))
			continue
		}
		if err := parseInto(ctx, a.parser, entry.Name(), content, out); err != nil {
			a.warn("skipping translation file", name, err)
			continue
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)
	}
	return out, nil
}

func (a *DirectoryAdapter) warn(msg, file string, err error) {
	if a.logger != nil {
		a.logger.Warn(msg, logger.File(file), logger.Error(err))
	}
}

func parseInto(ctx context.Context, parser Parser, name string, content []byte, out map[string]map[string]any) error {
	p := parserFor(parser, name)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}

	tree, err := p.Parse(ctx, content)
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	if isLanguageTag(base) {
		mergeCatalog(out, base, tree)
		return nil
	}

	for lang, catalog := range tree {
		m, ok := catalog.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: language %q holds %T, expected a mapping", ErrInvalidCatalog, lang, catalog)
		}
		mergeCatalog(out, lang, m)
	}
	return nil
}

// mergeCatalog deep-merges catalog into the normalised language entry.
func mergeCatalog(out map[string]map[string]any, lang string, catalog map[string]any) {
	lang = NormalizeLanguage(lang)
	if out[lang] == nil {
		out[lang] = make(map[string]any, len(catalog))
	}
	mergeTree(out[lang], catalog)
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		sm, srcIsMap := v.(map[string]any)
		dm, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeTree(dm, sm)
			continue
		}
		if srcIsMap {
			cp := make(map[string]any, len(sm))
			mergeTree(cp, sm)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}
