package rules

import (
	"standby-builder/internal/core/domain"
)

// Engine evaluates an ordered rule list. It never stops at the first error:
// every rule runs on every call so the caller gets the full diagnosis.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine over rules, or over DefaultRules when none are given.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Validate runs every rule against cfg and collects the messages of those
// that fire, in rule order.
func (e *Engine) Validate(cfg domain.NormalizedConfig) domain.ValidationResult {
	result := domain.ValidationResult{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}
	for _, r := range e.rules {
		if !r.Fires(&cfg) {
			continue
		}
		switch r.Severity {
		case SeverityError:
			result.Errors = append(result.Errors, r.Message)
		case SeverityWarning:
			result.Warnings = append(result.Warnings, r.Message)
		}
	}
	return result
}
