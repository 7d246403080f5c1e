package rules

import (
	"math"
	"net"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// E.164 with optional leading plus.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
	integerRegex       = regexp.MustCompile(`^[-+]?[0-9]+$`)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isEmail accepts RFC 5322 addresses with a dotted domain.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func isURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// isPhone accepts international numbers; spaces and dashes are ignored.
func isPhone(s string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
	if len(cleaned) < 7 {
		return false
	}
	return phoneRegex.MatchString(cleaned)
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && !strings.Contains(s, ":")
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	return ip.To4() == nil || strings.Contains(s, ":")
}

func isIP(s string) bool {
	return net.ParseIP(s) != nil
}

func isMAC(s string) bool {
	_, err := net.ParseMAC(s)
	return err == nil
}

func isLowercase(s string) bool {
	return s == strings.ToLower(s)
}

func isUppercase(s string) bool {
	return s == strings.ToUpper(s)
}

func hasNoWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}

// isNumber accepts Go numeric values (except NaN and infinities) and strings
// that parse as a finite float.
func isNumber(value any) bool {
	switch v := value.(type) {
	case nil, bool:
		return false
	case string:
		if isBlank(v) {
			return false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && !math.IsInf(f, 0)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return false
	}
}
