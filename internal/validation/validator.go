// Package validation holds the stateless input checks for the login,
// registration and contact forms. Nothing here touches storage or the UI;
// failures come back as field keys the UI renders messages against.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// emailPart matches a run of anything but '@' and whitespace, where whitespace is
// the full Unicode set (separators, vertical tab, BOM) and not only ASCII.
const emailPart = `[^@\s\x{0B}\p{Z}\x{FEFF}]+`

var emailShape = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// IsValidEmail reports whether s looks like local@domain.tld. There is no
// DNS or deliverability check.
func IsValidEmail(s string) bool {
	return emailShape.MatchString(s)
}

// LoginForm is the input of the login surface.
type LoginForm struct {
	Email    string `field:"loginEmail" validate:"required,emailshape"`
	Password string `field:"loginPassword" validate:"required"`
}

// RegisterForm is the input of the registration surface. Password length is
// counted in runes.
type RegisterForm struct {
	Name            string `field:"registerName" validate:"required"`
	Email           string `field:"registerEmail" validate:"required,emailshape"`
	Password        string `field:"registerPassword" validate:"required,min=6"`
	ConfirmPassword string `field:"registerConfirmPassword" validate:"required,eqfield=Password"`
}

// ContactForm is the input of the contact surface.
type ContactForm struct {
	Name    string `field:"contactName" validate:"required"`
	Email   string `field:"contactEmail" validate:"required,emailshape"`
	Message string `field:"contactMessage" validate:"required"`
}

var messages = map[string]map[string]string{
	"loginEmail": {
		"required":   "Email is required",
		"emailshape": "Please enter a valid email",
	},
	"loginPassword": {
		"required": "Password is required",
	},
	"registerName": {
		"required": "Full name is required",
	},
	"registerEmail": {
		"required":   "Email is required",
		"emailshape": "Please enter a valid email",
	},
	"registerPassword": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	"registerConfirmPassword": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
	"contactName":    {"required": "Please fill in all fields"},
	"contactMessage": {"required": "Please fill in all fields"},
	"contactEmail": {
		"required":   "Please fill in all fields",
		"emailshape": "Please enter a valid email address",
	},
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func validate() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return fld.Tag.Get("field")
		})
		if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		}); err != nil {
			panic(err)
		}
		engine = v
	})
	return engine
}

// ValidateLogin checks a login attempt, collecting every failing field.
func ValidateLogin(f LoginForm) error {
	return check("login", f)
}

// ValidateRegister checks a registration attempt, collecting every failing field.
func ValidateRegister(f RegisterForm) error {
	return check("register", f)
}

// ValidateContact checks a contact message, collecting every failing field.
func ValidateContact(f ContactForm) error {
	return check("contact", f)
}

func check(form string, s any) error {
	err := validate().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s form: %w", form, err)
	}

	out := &Error{Form: form, Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: messageFor(fe.Field(), fe.Tag()),
		})
	}
	return out
}

func messageFor(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return field + " is invalid"
}
