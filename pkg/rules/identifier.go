package rules

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugRegex      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	usernameRegex  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	hexStringRegex = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	base64Regex    = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
	versionRegex   = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)
)

func isBase64(s string) bool {
	if len(s)%4 != 0 {
		return false
	}
	return base64Regex.MatchString(s)
}

// isDomainName checks label length, hyphen placement and an alphabetic TLD.
func isDomainName(s string) bool {
	if len(s) > 253 {
		return false
	}

	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}

	for i, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, char := range label {
			if !isASCIILetter(char) && !(char >= '0' && char <= '9') && char != '-' {
				return false
			}
		}
		if i == len(labels)-1 {
			if len(label) < 2 {
				return false
			}
			for _, char := range label {
				if !isASCIILetter(char) {
					return false
				}
			}
		}
	}

	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isUUID accepts the canonical 36-character form only.
func isUUID(s string) bool {
	// Cheap shape check before parsing.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
