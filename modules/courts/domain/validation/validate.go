package validation

import (
	"sort"
	"strings"

	"github.com/openjustice/courtadmin/pkg/constants"
)

// Validate runs every rule in rules over the real rows of the list. Blank
// rows, including the trailing template row, are never validated. Each
// violated rule contributes exactly one summary error plus a field error per
// offending row; rules report in declaration order.
func Validate[T Record](rules RuleSet, rows []T) []Error {
	var errs []Error

	for _, rule := range rules.Required {
		errs = appendRowErrors(errs, rows, rule.Summary, rule.FieldMessage, func(r Record) []string {
			if r.Field(rule.Field) == "" {
				return []string{rule.Field}
			}
			return nil
		})
	}

	for _, rule := range rules.CoRequired {
		errs = appendRowErrors(errs, rows, rule.Summary, rule.FieldMessage, func(r Record) []string {
			var present, missing []string
			for _, f := range rule.Fields {
				if r.Field(f) == "" {
					missing = append(missing, f)
				} else {
					present = append(present, f)
				}
			}
			if len(present) > 0 && len(missing) > 0 {
				return missing
			}
			return nil
		})
	}

	for _, rule := range rules.ExactlyOne {
		errs = appendRowErrors(errs, rows, rule.Summary, rule.FieldMessage, func(r Record) []string {
			var present []string
			for _, f := range rule.Fields {
				if r.Field(f) != "" {
					present = append(present, f)
				}
			}
			if len(present) == 1 {
				return nil
			}
			if len(present) == 0 {
				return rule.Fields
			}
			return present
		})
	}

	for _, rule := range rules.Formats {
		errs = appendRowErrors(errs, rows, rule.Summary, rule.FieldMessage, func(r Record) []string {
			v := r.Field(rule.Field)
			if v == "" {
				return nil
			}
			if constants.Validate.Var(v, rule.Tag) != nil {
				return []string{rule.Field}
			}
			return nil
		})
	}

	if rules.Unique != nil {
		errs = append(errs, checkUnique(*rules.Unique, rows)...)
	}

	return errs
}

// appendRowErrors evaluates one rule across all real rows. offending returns
// the field names to flag on a row, or nil when the row passes.
func appendRowErrors[T Record](errs []Error, rows []T, summary, fieldMessage string, offending func(Record) []string) []Error {
	var fieldErrs []Error
	for i, row := range rows {
		if row.Blank() {
			continue
		}
		for _, f := range offending(row) {
			fieldErrs = append(fieldErrs, Error{Scope: ScopeField, Row: i, Field: f, Message: fieldMessage})
		}
	}
	if len(fieldErrs) == 0 {
		return errs
	}
	errs = append(errs, Error{Scope: ScopeSummary, Row: -1, Message: summary})
	return append(errs, fieldErrs...)
}

func checkUnique[T Record](rule UniqueRule, rows []T) []Error {
	seen := map[string][]int{}
	for i, row := range rows {
		if row.Blank() {
			continue
		}
		v := row.Field(rule.Field)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		seen[key] = append(seen[key], i)
	}

	var offenders []int
	for _, idxs := range seen {
		if len(idxs) > 1 {
			offenders = append(offenders, idxs...)
		}
	}
	if len(offenders) == 0 {
		return nil
	}

	sort.Ints(offenders)
	errs := []Error{{Scope: ScopeSummary, Row: -1, Message: rule.Summary}}
	for _, i := range offenders {
		errs = append(errs, Error{Scope: ScopeField, Row: i, Field: rule.Field, Message: rule.FieldMessage})
	}
	return errs
}

// Summaries filters errs down to its summary entries.
func Summaries(errs []Error) []Error {
	var out []Error
	for _, e := range errs {
		if e.Scope == ScopeSummary {
			out = append(out, e)
		}
	}
	return out
}
