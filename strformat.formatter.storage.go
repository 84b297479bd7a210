package strformat

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// StorageFormatter formats templates stored by name in a TemplateStorage.
// Compiled templates are cached per stored version ID, so a cached entry
// can never be stale: saving a new version yields a new ID.
type StorageFormatter struct {
	formatter *Formatter
	storage   TemplateStorage
	logger    *zap.Logger

	mu       sync.RWMutex
	compiled map[TemplateID]*Template
	byName   map[string][]TemplateID
}

// StorageFormatterConfig configures a StorageFormatter.
type StorageFormatterConfig struct {
	// Storage is the template backend (required).
	Storage TemplateStorage

	// Formatter compiles the stored sources.
	// If nil, a formatter with default options is created.
	Formatter *Formatter
}

// NewStorageFormatter creates a StorageFormatter.
func NewStorageFormatter(config StorageFormatterConfig) (*StorageFormatter, error) {
	if config.Storage == nil {
		return nil, &StorageError{Message: ErrMsgNilStorage}
	}

	formatter := config.Formatter
	if formatter == nil {
		var err error
		formatter, err = New()
		if err != nil {
			return nil, err
		}
	}

	return &StorageFormatter{
		formatter: formatter,
		storage:   config.Storage,
		logger:    formatter.logger,
		compiled:  make(map[TemplateID]*Template),
		byName:    make(map[string][]TemplateID),
	}, nil
}

// MustNewStorageFormatter creates a StorageFormatter, panicking on error.
func MustNewStorageFormatter(config StorageFormatterConfig) *StorageFormatter {
	sf, err := NewStorageFormatter(config)
	if err != nil {
		panic(err)
	}
	return sf
}

// Storage returns the underlying storage.
func (sf *StorageFormatter) Storage() TemplateStorage {
	return sf.storage
}

// Save compiles tmpl.Source and stores it as a new version.
// Templates that do not compile are rejected with the compile error.
func (sf *StorageFormatter) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if tmpl == nil {
		return &StorageError{Message: ErrMsgNilTemplate}
	}
	compiled, err := sf.formatter.Compile(tmpl.Source)
	if err != nil {
		return err
	}
	if err := sf.storage.Save(ctx, tmpl); err != nil {
		return err
	}

	sf.mu.Lock()
	sf.remember(tmpl.Name, tmpl.ID, compiled)
	sf.mu.Unlock()
	return nil
}

// Delete removes all versions of a template and drops its compiled entries.
func (sf *StorageFormatter) Delete(ctx context.Context, name string) error {
	if err := sf.storage.Delete(ctx, name); err != nil {
		return err
	}
	sf.forget(name)
	return nil
}

// Format executes the latest version of the named template.
func (sf *StorageFormatter) Format(ctx context.Context, name string, args ...any) (string, error) {
	stored, err := sf.storage.Get(ctx, name)
	if err != nil {
		return "", err
	}
	tmpl, err := sf.compile(stored)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(args...)
}

// FormatVersion executes a specific version of the named template.
func (sf *StorageFormatter) FormatVersion(ctx context.Context, name string, version int, args ...any) (string, error) {
	stored, err := sf.storage.GetVersion(ctx, name, version)
	if err != nil {
		return "", err
	}
	tmpl, err := sf.compile(stored)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(args...)
}

// Compile returns the compiled latest version of the named template.
func (sf *StorageFormatter) Compile(ctx context.Context, name string) (*Template, error) {
	stored, err := sf.storage.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return sf.compile(stored)
}

// Validate compiles the latest stored version of a template.
func (sf *StorageFormatter) Validate(ctx context.Context, name string) error {
	_, err := sf.Compile(ctx, name)
	return err
}

// CachedTemplates returns the number of compiled templates held.
func (sf *StorageFormatter) CachedTemplates() int {
	sf.mu.RLock()
	defer sf.mu.RUnlock()
	return len(sf.compiled)
}

// ClearCache drops every compiled template.
func (sf *StorageFormatter) ClearCache() {
	sf.mu.Lock()
	sf.compiled = make(map[TemplateID]*Template)
	sf.byName = make(map[string][]TemplateID)
	sf.mu.Unlock()
}

// Close releases the underlying storage.
func (sf *StorageFormatter) Close() error {
	sf.ClearCache()
	return sf.storage.Close()
}

func (sf *StorageFormatter) compile(stored *StoredTemplate) (*Template, error) {
	sf.mu.RLock()
	tmpl, ok := sf.compiled[stored.ID]
	sf.mu.RUnlock()
	if ok {
		sf.logger.Debug(LogMsgStorageHit,
			zap.String(LogFieldName, stored.Name),
			zap.Int(LogFieldVersion, stored.Version))
		return tmpl, nil
	}

	sf.logger.Debug(LogMsgStorageMiss,
		zap.String(LogFieldName, stored.Name),
		zap.Int(LogFieldVersion, stored.Version))

	tmpl, err := sf.formatter.Compile(stored.Source)
	if err != nil {
		return nil, err
	}

	sf.mu.Lock()
	sf.remember(stored.Name, stored.ID, tmpl)
	sf.mu.Unlock()
	return tmpl, nil
}

// remember caches a compiled template. Caller holds the write lock.
func (sf *StorageFormatter) remember(name string, id TemplateID, tmpl *Template) {
	if id == "" {
		return
	}
	if _, exists := sf.compiled[id]; !exists {
		sf.byName[name] = append(sf.byName[name], id)
	}
	sf.compiled[id] = tmpl
}

func (sf *StorageFormatter) forget(name string) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	for _, id := range sf.byName[name] {
		delete(sf.compiled, id)
	}
	delete(sf.byName, name)
}
