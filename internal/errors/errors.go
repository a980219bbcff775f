package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrLengthHeaderInvalid = errors.New("decompressed length header is invalid")
	ErrCorruptedData       = errors.New("compressed data is corrupted")
	ErrInvalidTextEncoding = errors.New("decompressed bytes are not valid UTF-8 text")
	ErrCompressionFailure  = errors.New("compressor rejected the input")
	ErrEmptyInput          = errors.New("input is empty")
	ErrNoInput             = errors.New("no input provided: please specify a file with -i or pipe data to stdin")
	ErrFileNotFound        = errors.New("file not found")
	ErrFileEmpty           = errors.New("file is empty")
	ErrInvalidFilePath     = errors.New("invalid file path")
	ErrUnknownCompressor   = errors.New("unknown compressor")
	ErrInvalidKey          = errors.New("invalid key")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput        ErrorType = "input"
	ErrorTypeOutput       ErrorType = "output"
	ErrorTypeConfig       ErrorType = "config"
	ErrorTypeCompression  ErrorType = "compression"
	ErrorTypeLengthHeader ErrorType = "length_header"
	ErrorTypeCorrupted    ErrorType = "corrupted"
	ErrorTypeEncoding     ErrorType = "encoding"
	ErrorTypeUnknown      ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newAppError(typ ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    typ,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new error related to reading input
func NewInputError(message string, err error) *AppError {
	return newAppError(ErrorTypeInput, message, err)
}

// NewOutputError creates a new error related to writing output
func NewOutputError(message string, err error) *AppError {
	return newAppError(ErrorTypeOutput, message, err)
}

// NewConfigError creates a new error related to configuration
func NewConfigError(message string, err error) *AppError {
	return newAppError(ErrorTypeConfig, message, err)
}

// NewCompressionError creates a new error raised when the compressor fails
func NewCompressionError(message string, err error) *AppError {
	return newAppError(ErrorTypeCompression, message, err)
}

// NewLengthHeaderError creates a new error raised when the decompressed
// length cannot be derived from the compressed block
func NewLengthHeaderError(message string, err error) *AppError {
	return newAppError(ErrorTypeLengthHeader, message, err)
}

// NewCorruptedError creates a new error raised when decompression fails mid-stream
func NewCorruptedError(message string, err error) *AppError {
	return newAppError(ErrorTypeCorrupted, message, err)
}

// NewEncodingError creates a new error raised when decompressed bytes are not text
func NewEncodingError(message string, err error) *AppError {
	return newAppError(ErrorTypeEncoding, message, err)
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeCompression:
			return fmt.Sprintf("Compression error: %s", appErr.Message)
		case ErrorTypeLengthHeader:
			return fmt.Sprintf("Decompression error: %s (is the input compressed with the same algorithm?)", appErr.Message)
		case ErrorTypeCorrupted:
			return fmt.Sprintf("Decompression error: %s", appErr.Message)
		case ErrorTypeEncoding:
			return fmt.Sprintf("Text encoding error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide some data."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrUnknownCompressor) {
		return "Error: Unknown compressor. Supported compressors are snappy, s2 and zstd."
	}
	if errors.Is(err, ErrInvalidKey) {
		return "Error: Invalid key. Keys must be non-empty and must not contain ',', ']' or '`'."
	}

	return fmt.Sprintf("Error: %v", err)
}
