package service

import (
	"fmt"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// invalidf builds a field-level validation error wrapping
// domain.ErrInvalidInput so the transport layer can map it to a 400.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}
