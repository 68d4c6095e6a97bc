package guardian

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// phonePattern accepts a leading digit or "+" followed by at least six more
// digits, spaces, hyphens or parentheses.
var phonePattern = regexp.MustCompile(`^[+0-9][0-9\s\-()]{6,}$`)

// AddInput holds the parameters for registering a guardian.
type AddInput struct {
	Name         string
	Method       string
	Value        string
	Relationship string
}

func (i AddInput) method() domain.ContactMethod {
	return domain.ContactMethod(strings.ToLower(strings.TrimSpace(i.Method)))
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Code: "name_required", Message: "name is required"})
	}

	method := i.method()
	if !method.IsValid() {
		errs = append(errs, domain.FieldError{Field: "method", Code: "method_invalid", Message: "method must be sms or email"})
	}

	value := strings.TrimSpace(i.Value)
	if value == "" {
		errs = append(errs, domain.FieldError{Field: "value", Code: "value_required", Message: "value is required"})
	} else {
		switch method {
		case domain.ContactMethodEmail:
			if !strings.Contains(value, "@") {
				errs = append(errs, domain.FieldError{Field: "value", Code: "email_invalid", Message: "value must be an email address"})
			}
		case domain.ContactMethodSMS:
			if !phonePattern.MatchString(value) {
				errs = append(errs, domain.FieldError{Field: "value", Code: "phone_invalid", Message: "value must be a phone number"})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
