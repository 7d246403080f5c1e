package rules

// builtins returns the rules every NewDefault registry starts with.
func builtins() map[string]Predicate {
	return map[string]Predicate{
		"email":         text(isEmail),
		"url":           text(isURL),
		"phone":         text(isPhone),
		"ipv4":          text(isIPv4),
		"ipv6":          text(isIPv6),
		"ip":            text(isIP),
		"mac":           text(isMAC),
		"alpha":         text(alphaRegex.MatchString),
		"alphanumeric":  text(alphanumericRegex.MatchString),
		"numeric":       text(numericStringRegex.MatchString),
		"integer":       text(integerRegex.MatchString),
		"number":        isNumber,
		"lowercase":     text(isLowercase),
		"uppercase":     text(isUppercase),
		"no_whitespace": text(hasNoWhitespace),
		"slug":          text(slugRegex.MatchString),
		"username":      text(usernameRegex.MatchString),
		"hex":           text(hexStringRegex.MatchString),
		"base64":        text(isBase64),
		"domain":        text(isDomainName),
		"semver":        text(versionRegex.MatchString),
		"uuid":          text(isUUID),
	}
}

// text adapts a string check into a Predicate. Blank values never match.
func text(check func(string) bool) Predicate {
	return func(value any) bool {
		s := Stringify(value)
		if isBlank(s) {
			return false
		}
		return check(s)
	}
}
