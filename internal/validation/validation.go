package validation

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/songzhibin97/rankfi/internal/models"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue 单条数据问题
type Issue struct {
	Exchange  string       `json:"exchange"`
	Field     string       `json:"field"`
	Issue     string       `json:"issue"`
	Current   models.Value `json:"current_value"`
	Suggested models.Value `json:"suggested_value"`
	Severity  Severity     `json:"severity"`
}

type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

type Result struct {
	Issues  []Issue `json:"issues"`
	Summary Summary `json:"summary"`
}

// Passed reports a result without issues.
func (r Result) Passed() bool {
	return len(r.Issues) == 0
}

// Filter returns the issues of one severity.
func (r Result) Filter(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

var (
	requiredFields = []string{"app_name", "website"}

	booleanColumns = []string{
		"copy_trading", "trading_bots", "p2p_trading", "staking_or_earn",
		"mobile_app", "247_support", "proof_of_reserves", "uses_cold_storage",
		"insurance_policy", "2fa", "kyc", "publicly_traded",
	}

	integerColumns = []string{
		"coins", "number_of_futures", "max_leverage", "margin_spot",
		"founded", "fiat_currencies",
	}

	floatColumns = []string{
		"maker_fee", "taker_fee", "futures_maker_fee", "futures_taker_fee",
	}

	integerRe = regexp.MustCompile(`(?i)^(\d+)\+?$|^([\d.]+)([MBK])?$`)
	floatRe   = regexp.MustCompile(`[\d.]+`)
)

func isValidBoolean(v models.Value) bool {
	switch v.Kind() {
	case models.KindBool:
		return true
	case models.KindString:
		switch strings.ToLower(strings.TrimSpace(v.Text())) {
		case "yes", "no", "true", "false":
			return true
		}
	}
	return false
}

func isValidInteger(v models.Value) bool {
	switch v.Kind() {
	case models.KindNumber:
		f, _ := v.Float()
		return f == math.Trunc(f)
	case models.KindString:
		return integerRe.MatchString(v.Text())
	}
	return false
}

func isValidFloat(v models.Value) bool {
	switch v.Kind() {
	case models.KindNumber:
		return true
	case models.KindString:
		return floatRe.MatchString(v.Text())
	}
	return false
}

// normalizeBoolean maps yes/no style strings, including "1" and "0", to a
// boolean and returns anything else unchanged.
func normalizeBoolean(v models.Value) models.Value {
	switch v.Flag() {
	case models.FlagYes:
		return models.Bool(true)
	case models.FlagNo:
		return models.Bool(false)
	}
	return v
}

// ValidateExchanges checks required fields and the formats of boolean,
// integer and fee columns. It never modifies the dataset.
func ValidateExchanges(exchanges []models.Exchange) Result {
	var issues []Issue

	for i := range exchanges {
		e := &exchanges[i]
		name := e.AppName
		if name == "" {
			name = "Unknown"
		}

		for _, field := range requiredFields {
			v := e.Field(field)
			if v.IsEmpty() {
				issues = append(issues, Issue{
					Exchange: name,
					Field:    field,
					Issue:    "Missing required field: " + field,
					Current:  v,
					Severity: SeverityError,
				})
			}
		}

		for _, field := range booleanColumns {
			v := e.Field(field)
			if !v.IsEmpty() && !isValidBoolean(v) {
				issues = append(issues, Issue{
					Exchange:  name,
					Field:     field,
					Issue:     "Invalid boolean format. Expected: true/false or Yes/No",
					Current:   v,
					Suggested: normalizeBoolean(v),
					Severity:  SeverityWarning,
				})
			}
		}

		for _, field := range integerColumns {
			v := e.Field(field)
			if !v.IsMissing() && !isValidInteger(v) {
				issues = append(issues, Issue{
					Exchange: name,
					Field:    field,
					Issue:    `Invalid integer format. Expected: number, "300+", "1M", "1B", or "1K"`,
					Current:  v,
					Severity: SeverityWarning,
				})
			}
		}

		for _, field := range floatColumns {
			v := e.Field(field)
			if !v.IsMissing() && !isValidFloat(v) {
				issues = append(issues, Issue{
					Exchange: name,
					Field:    field,
					Issue:    `Invalid float format. Expected: number or percentage string like "0.10%"`,
					Current:  v,
					Severity: SeverityWarning,
				})
			}
		}
	}

	return Result{Issues: issues, Summary: summarize(issues)}
}

func summarize(issues []Issue) Summary {
	s := Summary{Total: len(issues)}
	for _, i := range issues {
		switch i.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Info++
		}
	}
	return s
}

const passedMessage = "✅ Data validation passed! No issues found."

// Report formats a result as plain text.
func Report(r Result) string {
	if r.Passed() {
		return passedMessage
	}

	var b strings.Builder
	b.WriteString("📊 Data Validation Report\n")
	fmt.Fprintf(&b, "Total Issues: %d\n", r.Summary.Total)
	fmt.Fprintf(&b, "Errors: %d\n", r.Summary.Errors)
	fmt.Fprintf(&b, "Warnings: %d\n", r.Summary.Warnings)
	fmt.Fprintf(&b, "Info: %d\n\n", r.Summary.Info)

	if r.Summary.Errors > 0 {
		b.WriteString("❌ Errors:\n")
		for _, i := range r.Filter(SeverityError) {
			fmt.Fprintf(&b, "  - %s.%s: %s\n", i.Exchange, i.Field, i.Issue)
		}
		b.WriteString("\n")
	}

	if r.Summary.Warnings > 0 {
		b.WriteString("⚠️ Warnings:\n")
		for _, i := range r.Filter(SeverityWarning) {
			fmt.Fprintf(&b, "  - %s.%s: %s", i.Exchange, i.Field, i.Issue)
			if i.Suggested.Kind() != models.KindNull {
				fmt.Fprintf(&b, " (Suggested: %s)", i.Suggested.String())
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Log writes a result through slog: one summary line, then one line per
// error or warning.
func Log(logger *slog.Logger, r Result) {
	if r.Passed() {
		logger.Info(passedMessage)
		return
	}

	logger.Info("data validation results",
		"total", r.Summary.Total,
		"errors", r.Summary.Errors,
		"warnings", r.Summary.Warnings,
		"info", r.Summary.Info,
	)

	for _, i := range r.Filter(SeverityError) {
		logger.Error(i.Issue, "exchange", i.Exchange, "field", i.Field, "value", i.Current.String())
	}
	for _, i := range r.Filter(SeverityWarning) {
		args := []any{"exchange", i.Exchange, "field", i.Field, "value", i.Current.String()}
		if i.Suggested.Kind() != models.KindNull {
			args = append(args, "suggested", i.Suggested.String())
		}
		logger.Warn(i.Issue, args...)
	}
}
