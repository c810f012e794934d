package transliterate

import "fmt"

// ConfigurationError is returned when scheme tables cannot be compiled,
// e.g. because the classifier scheme is missing.
type ConfigurationError struct {
	Scheme Scheme // may be empty for errors concerning the table as a whole
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Scheme == "" {
		return fmt.Sprintf("transliteration tables: %s", e.Reason)
	}
	return fmt.Sprintf("transliteration tables: scheme %q: %s", e.Scheme, e.Reason)
}

func errConfig(scheme Scheme, format string, args ...any) error {
	err := &ConfigurationError{Scheme: scheme, Reason: fmt.Sprintf(format, args...)}
	tracer().Errorf("%s", err.Error())
	return err
}

// UnsupportedSchemeError is returned when a scheme is not registered. Role
// is "source" or "target" for conversions and empty for queries like Kind.
type UnsupportedSchemeError struct {
	Scheme Scheme
	Role   string
}

func (e *UnsupportedSchemeError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("unsupported transliteration: %s", e.Scheme)
	}
	return fmt.Sprintf("unsupported %s transliteration: %s", e.Role, e.Scheme)
}
