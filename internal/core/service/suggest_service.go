package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// departmentKeywords routes common issue vocabulary to a department.
// Ties are broken by department order; first match wins.
var departmentKeywords = map[string][]string{
	"IT":          {"laptop", "computer", "wifi", "network", "password", "software", "printer", "email", "vpn", "monitor"},
	"HR":          {"harassment", "payroll", "leave", "vacation", "benefits", "onboarding", "colleague", "manager"},
	"Facilities":  {"light", "lighting", "desk", "chair", "door", "window", "air conditioning", "heating", "restroom", "elevator"},
	"Maintenance": {"leak", "broken", "repair", "pipe", "electrical", "outlet", "ceiling", "floor"},
	"Operations":  {"shipment", "inventory", "warehouse", "schedule", "delivery", "logistics"},
	"Finance":     {"invoice", "expense", "reimbursement", "budget", "payment", "receipt"},
	"Legal":       {"contract", "compliance", "nda", "policy", "lawsuit", "regulation"},
}

const defaultDepartment = "Facilities"

// KeywordSuggester is a deterministic, in-process stand-in for the external
// model classifying issue reports. The attached image is accepted for
// interface parity but not inspected.
type KeywordSuggester struct {
	logger zerolog.Logger
}

func NewKeywordSuggester(logger zerolog.Logger) *KeywordSuggester {
	return &KeywordSuggester{logger: logger}
}

// Suggest returns the single most relevant department for the description.
func (s *KeywordSuggester) Suggest(_ context.Context, description, _ string) (string, error) {
	text := strings.ToLower(description)

	best, bestHits := defaultDepartment, 0
	for _, dept := range domain.Departments {
		hits := 0
		for _, kw := range departmentKeywords[dept] {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = dept, hits
		}
	}

	s.logger.Debug().Str("department", best).Int("keyword_hits", bestHits).Msg("department suggested")
	return best, nil
}
