package errors

import "fmt"

// Error codes
const (
	CodeCatalog    = "CATALOG_ERROR"
	CodeLoader     = "LOADER_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeService    = "SERVICE_ERROR"
)

type CatalogError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

func NewCatalogError(message, code string, context map[string]any) *CatalogError {
	return &CatalogError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *CatalogError) WithCause(cause error) *CatalogError {
	e.Cause = cause
	return e
}

// LoaderError covers a failed data acquisition attempt. Stage is one of
// "primary", "fallback" or "sources"; only primary-stage failures may be
// absorbed by falling back to the flat file.
type LoaderError struct {
	*CatalogError
	Stage string
}

func NewLoaderError(message, stage string, cause error) *LoaderError {
	return &LoaderError{
		CatalogError: &CatalogError{
			Message: message,
			Code:    CodeLoader,
			Context: map[string]any{
				"stage": stage,
			},
			Cause: cause,
		},
		Stage: stage,
	}
}

// Recoverable reports whether the failure is one the loader recovers from
// without surfacing it to the caller.
func (e *LoaderError) Recoverable() bool {
	return e.Stage == "primary"
}

type CacheError struct {
	*CatalogError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		CatalogError: &CatalogError{
			Message: message,
			Code:    CodeCache,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type ServiceError struct {
	*CatalogError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		CatalogError: &CatalogError{
			Message: message,
			Code:    CodeService,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}

type ValidationError struct {
	*CatalogError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		CatalogError: &CatalogError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}
