package strformat

import "time"

// Error kind values stored under MetaKeyKind
const (
	ErrKindMalformedPath           = "malformed_path"
	ErrKindUnterminatedPlaceholder = "unterminated_placeholder"
	ErrKindUnmatchedBrace          = "unmatched_brace"
	ErrKindTemplateTooLarge        = "template_too_large"
)

// Metadata keys attached to errors
const (
	MetaKeyKind     = "kind"
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyPath     = "path"
	MetaKeySize     = "size"
	MetaKeyLimit    = "limit"
	MetaKeyName     = "name"
	MetaKeyVersion  = "version"
	MetaKeyDriver   = "driver"
	MetaKeyResource = "template"
)

// Formatter defaults
const (
	DefaultMaxTemplateSize = 0 // unlimited
)

// Brace policy names, used by configuration files
const (
	BracePolicyNameLiteral = "literal"
	BracePolicyNameStrict  = "strict"
)

// Log message constants
const (
	LogMsgFormatterCreated = "formatter created"
	LogMsgCompileStart     = "compiling template"
	LogMsgCompileFailed    = "template compilation failed"
	LogMsgCompileEnd       = "template compiled"
	LogMsgStorageHit       = "compiled template cache hit"
	LogMsgStorageMiss      = "compiled template cache miss"
)

// Log field names
const (
	LogFieldBracePolicy  = "brace_policy"
	LogFieldSourceLength = "source_length"
	LogFieldPlaceholders = "placeholders"
	LogFieldName         = "name"
	LogFieldVersion      = "version"
	LogFieldError        = "error"
)

// Storage driver names
const (
	StorageDriverNameMemory     = "memory"
	StorageDriverNameFilesystem = "filesystem"
	StorageDriverNamePostgres   = "postgres"
)

// Template ID generation
const (
	TemplateIDPrefix    = "tmpl_"
	TemplateIDRandBytes = 9
)

// Filesystem storage constants
const (
	FilesystemDirPermissions  = 0o755
	FilesystemFilePermissions = 0o644
	FilesystemVersionPrefix   = "v"
	FilesystemVersionSuffix   = ".json"
	FilesystemNameMaxLength   = 255
)

// PostgreSQL storage defaults
const (
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
	PostgresTablePrefix            = "strformat_"
	PostgresDriverName             = "postgres"
	PostgresSaveAttempts           = 3
	PostgresCodeUniqueViolation    = "23505"
	PostgresCodeSerialization      = "40001"
)

// Cache defaults
const (
	CacheDefaultTTL              = 5 * time.Minute
	CacheDefaultMaxEntries       = 1000
	CacheDefaultNegativeCacheTTL = 30 * time.Second
)

// Template error messages
const (
	ErrMsgMalformedPath           = "malformed path expression"
	ErrMsgUnterminatedPlaceholder = "unterminated placeholder"
	ErrMsgUnmatchedBrace          = "unmatched closing brace"
	ErrMsgTemplateTooLarge        = "template exceeds maximum size"
	ErrMsgCompileFailed           = "template compilation failed"
)

// Error code constants for categorization
const (
	ErrCodeTemplate = "STRFORMAT_TEMPLATE"
	ErrCodePath     = "STRFORMAT_PATH"
	ErrCodeStorage  = "STRFORMAT_STORAGE"
)

// Storage error messages
const (
	ErrMsgTemplateNotFound         = "template not found"
	ErrMsgVersionNotFound          = "template version not found"
	ErrMsgInvalidTemplateName      = "invalid template name"
	ErrMsgPathTraversalDetected    = "path traversal detected in template name"
	ErrMsgNilTemplate              = "template cannot be nil"
	ErrMsgStorageClosed            = "storage is closed"
	ErrMsgStorageDriverNotFound    = "storage driver not found"
	ErrMsgNilStorageDriver         = "storage driver cannot be nil"
	ErrMsgDriverAlreadyRegistered  = "storage driver already registered"
	ErrMsgNilStorage               = "storage cannot be nil"
	ErrMsgInvalidStorageRoot       = "storage root directory cannot be empty"
	ErrMsgCreateStorageDir         = "failed to create storage directory"
	ErrMsgReadStorageDir           = "failed to read storage directory"
	ErrMsgReadTemplateFile         = "failed to read template file"
	ErrMsgWriteTemplateFile        = "failed to write template file"
	ErrMsgDeleteTemplateFiles      = "failed to delete template files"
	ErrMsgDecodeTemplateFile       = "failed to decode template file"
	ErrMsgPostgresEmptyConnString  = "postgres connection string cannot be empty"
	ErrMsgPostgresConnectionFailed = "failed to connect to postgres"
	ErrMsgPostgresQueryFailed      = "postgres query failed"
	ErrMsgPostgresMigrationFailed  = "postgres migration failed"
	ErrMsgPostgresTxFailed         = "postgres transaction failed"
	ErrMsgPostgresEncodeFailed     = "failed to encode template metadata"
	ErrMsgPostgresDecodeFailed     = "failed to decode template metadata"
)
