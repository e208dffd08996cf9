// Package brdoc formats and validates the Brazilian identifiers used across
// the shop's registration forms: CPF/CNPJ documents, phone numbers and
// vehicle license plates (both the old LLL-NNNN layout and Mercosul).
package brdoc

import (
	"regexp"
	"strings"
)

var (
	documentRe = regexp.MustCompile(`^(\d{3}\.\d{3}\.\d{3}-\d{2}|\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2})$`)
	phoneRe    = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	plateRe    = regexp.MustCompile(`^[A-Z]{3}-\d{4}$|^[A-Z]{3}\d[A-Z]\d{2}$`)

	cpfGroups   = regexp.MustCompile(`^(\d{3})(\d{3})(\d{3})(\d{2})$`)
	cnpjGroups  = regexp.MustCompile(`^(\d{2})(\d{3})(\d{3})(\d{4})(\d{2})$`)
	landlineRe  = regexp.MustCompile(`^(\d{2})(\d{4})(\d{4})$`)
	mobileRe    = regexp.MustCompile(`^(\d{2})(\d{5})(\d{4})$`)
	oldPlateRe  = regexp.MustCompile(`^([A-Z]{3})(\d{4})$`)
	mercosulRe  = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
	nonDigit    = regexp.MustCompile(`\D`)
	nonAlphaNum = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// FormatDocument masks a CPF (11 digits) or CNPJ (14 digits). Any other
// digit count comes back as the stripped digits, letting the caller keep
// typing.
func FormatDocument(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	switch len(digits) {
	case 11:
		return cpfGroups.ReplaceAllString(digits, "$1.$2.$3-$4")
	case 14:
		return cnpjGroups.ReplaceAllString(digits, "$1.$2.$3/$4-$5")
	}
	return digits
}

// ValidDocument reports whether s is a fully masked CPF or CNPJ.
func ValidDocument(s string) bool {
	return documentRe.MatchString(s)
}

// FormatPhone masks a 10-digit landline or 11-digit mobile number.
func FormatPhone(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	switch len(digits) {
	case 10:
		return landlineRe.ReplaceAllString(digits, "($1) $2-$3")
	case 11:
		return mobileRe.ReplaceAllString(digits, "($1) $2-$3")
	}
	return digits
}

// ValidPhone reports whether s is a fully masked phone number.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// FormatPlate uppercases and masks a license plate. Old-layout plates get
// the hyphen (ABC-1234); Mercosul plates (ABC1D23) carry none.
func FormatPlate(raw string) string {
	cleaned := strings.ToUpper(nonAlphaNum.ReplaceAllString(raw, ""))
	if oldPlateRe.MatchString(cleaned) {
		return oldPlateRe.ReplaceAllString(cleaned, "$1-$2")
	}
	return cleaned
}

// ValidPlate reports whether s is a masked old-layout or Mercosul plate.
func ValidPlate(s string) bool {
	return plateRe.MatchString(s)
}

// IsMercosul reports whether the (already masked) plate uses the Mercosul
// layout.
func IsMercosul(s string) bool {
	return mercosulRe.MatchString(s)
}
