package validator

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// Email validates an RFC 5322 address with a dotted domain. Empty values pass;
// combine with Required when the field is mandatory.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}
			_, domain, ok := strings.Cut(addr.Address, "@")
			return ok && strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeEmail,
			Message: "value is not a valid email address",
		},
	}
}

// URL validates an absolute URL. With no schemes given, http and https are accepted.
func URL(field, value string, schemes ...string) Rule {
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			u, err := url.Parse(value)
			if err != nil || u.Host == "" {
				return false
			}
			return slices.Contains(schemes, strings.ToLower(u.Scheme))
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeURL,
			Message: "invalid or missing URL scheme",
			Values:  map[string]any{"allowed_schemes": schemes},
		},
	}
}

// IP validates an IPv4 or IPv6 address.
func IP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || net.ParseIP(value) != nil
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeIP,
			Message: "value is not a valid IPv4 or IPv6 address",
		},
	}
}

// Pattern validates that value matches re.
func Pattern(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeRegex,
			Message: fmt.Sprintf("string does not match regex %q", re.String()),
			Values:  map[string]any{"pattern": re.String()},
		},
	}
}
