package registry

import (
	"strings"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// RegisterInput holds the parameters for registering a record.
type RegisterInput struct {
	ContentHash domain.ContentHash
	Category    string
	Locator     string
	Metrics     *domain.ActivityMetrics
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if err := i.ContentHash.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "content_hash", Message: err.Error()})
	}

	category := strings.TrimSpace(i.Category)
	if category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if len(category) > 100 {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 100 characters"})
	}

	if strings.TrimSpace(i.Locator) == "" {
		errs = append(errs, domain.FieldError{Field: "locator", Message: "required"})
	}

	if i.Metrics != nil && !i.Metrics.MetricKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "metrics.metric_kind", Message: "unknown kind"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
