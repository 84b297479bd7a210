package strformat

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-strformat/internal"
)

// Position represents a location in the source template
type Position = internal.Position

// ErrTemplateNotFound is wrapped by storage errors for unknown names, IDs and versions
var ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)

// NewMalformedPathError creates an error for a path that does not match the
// dot/bracket grammar, e.g. "a[b" or an empty identifier
func NewMalformedPathError(path string, pos Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodePath, ErrMsgMalformedPath), pos).
		WithMetadata(MetaKeyKind, ErrKindMalformedPath).
		WithMetadata(MetaKeyPath, path)
}

// NewUnterminatedPlaceholderError creates an error for a template that ends inside a placeholder
func NewUnterminatedPlaceholderError(pos Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeTemplate, ErrMsgUnterminatedPlaceholder), pos).
		WithMetadata(MetaKeyKind, ErrKindUnterminatedPlaceholder)
}

// NewUnmatchedBraceError creates an error for a lone "}" under BracePolicyStrict
func NewUnmatchedBraceError(pos Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeTemplate, ErrMsgUnmatchedBrace), pos).
		WithMetadata(MetaKeyKind, ErrKindUnmatchedBrace)
}

// NewTemplateTooLargeError creates an error for templates over the configured size limit
func NewTemplateTooLargeError(size, limit int) error {
	return cuserr.NewValidationError(ErrCodeTemplate, ErrMsgTemplateTooLarge).
		WithMetadata(MetaKeyKind, ErrKindTemplateTooLarge).
		WithMetadata(MetaKeySize, strconv.Itoa(size)).
		WithMetadata(MetaKeyLimit, strconv.Itoa(limit))
}

// IsMalformedPathError reports whether err is a malformed path error
func IsMalformedPathError(err error) bool {
	return errorKind(err) == ErrKindMalformedPath
}

// IsUnterminatedPlaceholderError reports whether err is an unterminated placeholder error
func IsUnterminatedPlaceholderError(err error) bool {
	return errorKind(err) == ErrKindUnterminatedPlaceholder
}

// IsUnmatchedBraceError reports whether err is an unmatched brace error
func IsUnmatchedBraceError(err error) bool {
	return errorKind(err) == ErrKindUnmatchedBrace
}

// IsTemplateTooLargeError reports whether err is a template size error
func IsTemplateTooLargeError(err error) bool {
	return errorKind(err) == ErrKindTemplateTooLarge
}

// ErrorPosition returns the template position recorded on err, if any
func ErrorPosition(err error) (Position, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return Position{}, false
	}
	line, ok := customErr.GetMetadata(MetaKeyLine)
	if !ok {
		return Position{}, false
	}
	column, _ := customErr.GetMetadata(MetaKeyColumn)
	offset, _ := customErr.GetMetadata(MetaKeyOffset)

	var pos Position
	pos.Line, _ = strconv.Atoi(line)
	pos.Column, _ = strconv.Atoi(column)
	pos.Offset, _ = strconv.Atoi(offset)
	return pos, true
}

// convertScanError maps scanner errors onto the public error constructors
func convertScanError(err error) error {
	var scanErr *internal.ScanError
	if !errors.As(err, &scanErr) {
		return err
	}
	switch scanErr.Kind {
	case internal.ErrKindMalformedPath:
		return NewMalformedPathError(scanErr.Path, scanErr.Position)
	case internal.ErrKindUnmatchedBrace:
		return NewUnmatchedBraceError(scanErr.Position)
	default:
		return NewUnterminatedPlaceholderError(scanErr.Position)
	}
}

func withPosition(err *cuserr.CustomError, pos Position) *cuserr.CustomError {
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

func errorKind(err error) string {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	kind, _ := customErr.GetMetadata(MetaKeyKind)
	return kind
}

// StorageError represents a storage-related error.
type StorageError struct {
	Message string
	Name    string
	Version int
	Cause   error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	msg := e.Message
	if e.Name != "" {
		msg += ": " + e.Name
		if e.Version > 0 {
			msg += " v" + strconv.Itoa(e.Version)
		}
	}
	if e.Cause != nil && e.Cause != ErrTemplateNotFound {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageTemplateNotFoundError creates an error for an unknown template name or ID
func NewStorageTemplateNotFoundError(name string) error {
	return &StorageError{Message: ErrMsgTemplateNotFound, Name: name, Cause: ErrTemplateNotFound}
}

// NewStorageVersionNotFoundError creates an error for an unknown template version
func NewStorageVersionNotFoundError(name string, version int) error {
	return &StorageError{Message: ErrMsgVersionNotFound, Name: name, Version: version, Cause: ErrTemplateNotFound}
}

// NewStorageClosedError creates an error for operations on closed storage
func NewStorageClosedError() error {
	return &StorageError{Message: ErrMsgStorageClosed}
}

// NewStorageDriverNotFoundError creates an error for an unregistered driver name
func NewStorageDriverNotFoundError(name string) error {
	return &StorageError{Message: ErrMsgStorageDriverNotFound, Name: name}
}

// IsTemplateNotFound reports whether err means the template or version does not exist
func IsTemplateNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}
