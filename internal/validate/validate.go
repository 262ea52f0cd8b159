package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Failure pinpoints one rejected field.
type Failure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule reports zero or one failure when evaluated.
type Rule func() *Failure

// Run evaluates every rule in order and collects the failures. An empty
// result means the input passed.
func Run(rules ...Rule) []Failure {
	var failures []Failure
	for _, rule := range rules {
		if f := rule(); f != nil {
			failures = append(failures, *f)
		}
	}
	return failures
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// StringLength requires the trimmed value to be between min and max runes.
func StringLength(field, value string, min, max int) Rule {
	return func() *Failure {
		n := len([]rune(strings.TrimSpace(value)))
		if n < min || n > max {
			return &Failure{Field: field, Message: fmt.Sprintf("%s must be between %d and %d characters", fieldLabel(field), min, max)}
		}
		return nil
	}
}

// OptionalStringLength skips the check when the value is nil.
func OptionalStringLength(field string, value *string, min, max int) Rule {
	return func() *Failure {
		if value == nil {
			return nil
		}
		return StringLength(field, *value, min, max)()
	}
}

// MaxLength requires the trimmed value to be at most max runes.
func MaxLength(field, value string, max int) Rule {
	return func() *Failure {
		if len([]rune(strings.TrimSpace(value))) > max {
			return &Failure{Field: field, Message: fmt.Sprintf("%s must be less than %d characters", fieldLabel(field), max)}
		}
		return nil
	}
}

// OptionalMaxLength skips the check when the value is nil.
func OptionalMaxLength(field string, value *string, max int) Rule {
	return func() *Failure {
		if value == nil {
			return nil
		}
		return MaxLength(field, *value, max)()
	}
}

// Email requires a plausible email address.
func Email(field, value string) Rule {
	return func() *Failure {
		if !emailPattern.MatchString(strings.TrimSpace(value)) {
			return &Failure{Field: field, Message: "Please provide a valid email"}
		}
		return nil
	}
}

// OptionalEmail skips the check when the value is nil.
func OptionalEmail(field string, value *string) Rule {
	return func() *Failure {
		if value == nil {
			return nil
		}
		return Email(field, *value)()
	}
}

// Password requires at least six characters including an uppercase
// letter, a lowercase letter and a digit.
func Password(field, value string) Rule {
	return func() *Failure {
		if len(value) < 6 {
			return &Failure{Field: field, Message: "Password must be at least 6 characters long"}
		}
		var upper, lower, digit bool
		for _, r := range value {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		if !upper || !lower || !digit {
			return &Failure{Field: field, Message: "Password must contain at least one uppercase letter, one lowercase letter, and one number"}
		}
		return nil
	}
}

// MinInt requires the value to be at least min.
func MinInt(field string, value, min int) Rule {
	return func() *Failure {
		if value < min {
			return &Failure{Field: field, Message: fmt.Sprintf("%s must be a positive integer", fieldLabel(field))}
		}
		return nil
	}
}

// OptionalMinInt skips the check when the value is nil.
func OptionalMinInt(field string, value *int, min int) Rule {
	return func() *Failure {
		if value == nil {
			return nil
		}
		return MinInt(field, *value, min)()
	}
}

// NonNegativeInt requires a value of zero or more.
func NonNegativeInt(field string, value int) Rule {
	return func() *Failure {
		if value < 0 {
			return &Failure{Field: field, Message: fmt.Sprintf("%s must be a non-negative integer", fieldLabel(field))}
		}
		return nil
	}
}

// OptionalNonNegativeInt skips the check when the value is nil.
func OptionalNonNegativeInt(field string, value *int) Rule {
	return func() *Failure {
		if value == nil {
			return nil
		}
		return NonNegativeInt(field, *value)()
	}
}

// NonNegativeNumber requires a value of zero or more.
func NonNegativeNumber(field string, value float64) Rule {
	return func() *Failure {
		if value < 0 {
			return &Failure{Field: field, Message: fmt.Sprintf("%s must be a positive number", fieldLabel(field))}
		}
		return nil
	}
}

// OptionalNonNegativeNumber skips the check when the value is nil.
func OptionalNonNegativeNumber(field string, value *float64) Rule {
	return func() *Failure {
		if value == nil {
			return nil
		}
		return NonNegativeNumber(field, *value)()
	}
}

// NumberRange requires min <= value <= max.
func NumberRange(field string, value, min, max float64) Rule {
	return func() *Failure {
		if value < min || value > max {
			return &Failure{Field: field, Message: fmt.Sprintf("%s must be between %g and %g", fieldLabel(field), min, max)}
		}
		return nil
	}
}

// OneOf requires the value to be one of the allowed strings.
func OneOf(field, value string, allowed ...string) Rule {
	return func() *Failure {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return &Failure{Field: field, Message: fmt.Sprintf("%s must be %s", fieldLabel(field), orList(allowed))}
	}
}

// OptionalOneOf skips the check when the value is nil or empty.
func OptionalOneOf(field string, value *string, allowed ...string) Rule {
	return func() *Failure {
		if value == nil || *value == "" {
			return nil
		}
		return OneOf(field, *value, allowed...)()
	}
}

// Matches requires the value to match the pattern.
func Matches(field, value string, pattern *regexp.Regexp, message string) Rule {
	return func() *Failure {
		if !pattern.MatchString(value) {
			return &Failure{Field: field, Message: message}
		}
		return nil
	}
}

// OptionalMatches skips the check when the value is nil or empty.
func OptionalMatches(field string, value *string, pattern *regexp.Regexp, message string) Rule {
	return func() *Failure {
		if value == nil || *value == "" {
			return nil
		}
		return Matches(field, *value, pattern, message)()
	}
}

// MinItems requires the slice to hold at least min entries.
func MinItems(field string, count, min int, message string) Rule {
	return func() *Failure {
		if count < min {
			return &Failure{Field: field, Message: message}
		}
		return nil
	}
}

// fieldLabel turns a camelCase field name into a capitalized label for
// failure messages ("prepTime" -> "Prep time").
func fieldLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// orList joins alternatives as "a, b, or c" for failure messages.
func orList(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	case 2:
		return values[0] + " or " + values[1]
	default:
		return strings.Join(values[:len(values)-1], ", ") + ", or " + values[len(values)-1]
	}
}
