package service

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonDigitRegex   = regexp.MustCompile(`\D+`)
)

// normalizeEmail lowercases and trims the provided email.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// normalizePhone strips non-digit characters and restores the leading plus.
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = nonDigitRegex.ReplaceAllString(phone, "")
	if phone == "" {
		return ""
	}
	if strings.HasPrefix(phone, "00") {
		phone = phone[2:]
	}
	return "+" + phone
}

// normalizeBloodType uppercases the value and removes interior spaces, so
// "ab +" and "AB+" resolve identically.
func normalizeBloodType(bloodType string) string {
	bloodType = strings.ToUpper(strings.TrimSpace(bloodType))
	return strings.ReplaceAll(bloodType, " ", "")
}

// sanitizeString collapses whitespace and trims the result.
func sanitizeString(value string) string {
	value = whitespaceRegex.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}
