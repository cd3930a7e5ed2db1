package swiftbic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrLength      = errors.New("swiftbic: code must be 8 or 11 characters")
	ErrInstitution = errors.New("swiftbic: institution code must be 4 letters")
	ErrCountry     = errors.New("swiftbic: unknown country code")
	ErrLocation    = errors.New("swiftbic: invalid location code")
	ErrBranch      = errors.New("swiftbic: invalid branch code")
)

// kosovo is assigned by SWIFT but has no ISO 3166-1 entry.
const kosovo = "XK"

// validate is safe for concurrent use and caches its rule parsing.
var validate = validator.New()

// Checker reports whether a code is a well-formed BIC. Implementations must be
// pure and safe for concurrent use.
type Checker interface {
	Check(code string) bool
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(code string) bool

// Check calls f(code).
func (f CheckerFunc) Check(code string) bool {
	if f == nil {
		return false
	}
	return f(code)
}

// Default returns the ISO 9362 checker backed by Validate.
func Default() Checker {
	return CheckerFunc(Validate)
}

// Code is a parsed BIC. Parts are upper-cased.
type Code struct {
	Institution string
	Country     string
	Location    string
	Branch      string
}

// String returns the 8 or 11 character form.
func (c Code) String() string {
	return c.Institution + c.Country + c.Location + c.Branch
}

// IsTest reports whether the code addresses a test and training destination.
func (c Code) IsTest() bool {
	return len(c.Location) == 2 && c.Location[1] == '0'
}

// IsPrimaryOffice reports whether the code has no branch or the XXX branch.
func (c Code) IsPrimaryOffice() bool {
	return c.Branch == "" || c.Branch == "XXX"
}

// Validate reports whether code is a structurally valid BIC with a known
// country. Letters match in either case.
func Validate(code string) bool {
	if validate.Var(code, "bic") != nil {
		return false
	}
	return IsCountry(code[4:6])
}

// IsCountry reports whether code is an ISO 3166-1 alpha-2 country code, or XK.
func IsCountry(code string) bool {
	code = strings.ToUpper(code)
	return code == kosovo || validate.Var(code, "iso3166_1_alpha2") == nil
}

// Parse splits code into its ISO 9362 parts and reports the first part that
// is malformed.
func Parse(code string) (Code, error) {
	if len(code) != 8 && len(code) != 11 {
		return Code{}, fmt.Errorf("%w: got %d", ErrLength, len(code))
	}

	parsed := Code{
		Institution: code[0:4],
		Country:     code[4:6],
		Location:    code[6:8],
	}
	if len(code) == 11 {
		parsed.Branch = code[8:11]
	}

	switch {
	case validate.Var(parsed.Institution, "alpha") != nil:
		return Code{}, fmt.Errorf("%w: %q", ErrInstitution, parsed.Institution)
	case validate.Var(parsed.Country, "alpha") != nil || !IsCountry(parsed.Country):
		return Code{}, fmt.Errorf("%w: %q", ErrCountry, parsed.Country)
	case validate.Var(parsed.Location, "alphanum") != nil:
		return Code{}, fmt.Errorf("%w: %q", ErrLocation, parsed.Location)
	case parsed.Branch != "" && validate.Var(parsed.Branch, "alphanum") != nil:
		return Code{}, fmt.Errorf("%w: %q", ErrBranch, parsed.Branch)
	}

	parsed.Institution = strings.ToUpper(parsed.Institution)
	parsed.Country = strings.ToUpper(parsed.Country)
	parsed.Location = strings.ToUpper(parsed.Location)
	parsed.Branch = strings.ToUpper(parsed.Branch)
	return parsed, nil
}
