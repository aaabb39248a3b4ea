// Package address normalizes Brazilian street addresses between the structured
// fields used by the profile form and the legacy single-line strings stored by
// older accounts.
package address

import (
	"regexp"
	"strings"
)

// Fields holds the structured representation of a Brazilian address.
type Fields struct {
	CEP          string // 8 digits, with or without the hyphen.
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string // Two-letter abbreviation, e.g. "SP".
}

// IsZero reports whether no field carries a value.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

var (
	cepLabeledPattern = regexp.MustCompile(`(?i)\bCEP[:\s]*([0-9]{5})-?([0-9]{3})\b`)
	cepBarePattern    = regexp.MustCompile(`\b([0-9]{5})-?([0-9]{3})\b`)
	numberPattern     = regexp.MustCompile(`(?i)^n[º°o.]?\s*([0-9]+[a-z]?)$`)
	cityStatePattern  = regexp.MustCompile(`^(.+)/([A-Za-z]{2})$`)
)

// complementTokens are the leading words that mark a segment as a complement
// rather than a street or neighborhood.
var complementTokens = []string{
	"apto", "apartamento", "bloco", "casa", "sala", "conjunto", "loja", "andar",
}

// Format renders structured fields into the canonical single-line form:
//
//	Rua das Flores, nº123, Complemento: Apto 45, Centro, São Paulo/SP, CEP 01310-100
//
// Empty fields are omitted along with their separators.
func Format(f Fields) string {
	parts := make([]string, 0, 6)

	if f.Street != "" {
		parts = append(parts, f.Street)
	}
	if f.Number != "" {
		parts = append(parts, "nº"+f.Number)
	}
	if f.Complement != "" {
		parts = append(parts, "Complemento: "+f.Complement)
	}
	if f.Neighborhood != "" {
		parts = append(parts, f.Neighborhood)
	}
	switch {
	case f.City != "" && f.State != "":
		parts = append(parts, f.City+"/"+strings.ToUpper(f.State))
	case f.City != "":
		parts = append(parts, f.City)
	case f.State != "":
		parts = append(parts, strings.ToUpper(f.State))
	}
	if f.CEP != "" {
		parts = append(parts, "CEP "+FormatCEP(f.CEP))
	}

	return strings.Join(parts, ", ")
}

// FormatCEP renders an 8-digit CEP as 00000-000. Inputs of any other shape are
// returned unchanged.
func FormatCEP(cep string) string {
	digits := NormalizeCEP(cep)
	if len(digits) != 8 {
		return cep
	}

	return digits[:5] + "-" + digits[5:]
}

// NormalizeCEP strips everything but digits from a CEP string.
func NormalizeCEP(cep string) string {
	var b strings.Builder
	b.Grow(len(cep))
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Parse recovers structured fields from a legacy single-line address.
// The extraction is best effort: the CEP, the house number and labeled or
// recognizable complements are recovered reliably, while the positional fields
// (street, neighborhood, city) are assigned in order of appearance. Segments
// that cannot be placed are returned joined as the remainder.
func Parse(legacy string) (Fields, string) {
	var f Fields

	rest := strings.TrimSpace(legacy)
	if rest == "" {
		return f, ""
	}

	// The CEP is the most distinctive token; pull it out before segmenting so
	// that "CEP 01310-100" does not end up as a positional field.
	if m := cepLabeledPattern.FindStringSubmatchIndex(rest); m != nil {
		f.CEP = rest[m[2]:m[3]] + rest[m[4]:m[5]]
		rest = rest[:m[0]] + rest[m[1]:]
	} else if m := cepBarePattern.FindStringSubmatchIndex(rest); m != nil {
		f.CEP = rest[m[2]:m[3]] + rest[m[4]:m[5]]
		rest = rest[:m[0]] + rest[m[1]:]
	}

	var leftover []string

	for _, raw := range strings.Split(rest, ",") {
		segment := strings.Trim(raw, " \t.")
		if segment == "" {
			continue
		}

		switch {
		case f.Number == "" && numberPattern.MatchString(segment):
			f.Number = numberPattern.FindStringSubmatch(segment)[1]
		case hasComplementLabel(segment):
			appendComplement(&f, strings.TrimSpace(segment[len("complemento:"):]))
		case startsWithComplementToken(segment):
			appendComplement(&f, segment)
		case f.City == "" && cityStatePattern.MatchString(segment):
			m := cityStatePattern.FindStringSubmatch(segment)
			f.City = strings.TrimSpace(m[1])
			f.State = strings.ToUpper(m[2])
		case f.Street == "":
			f.Street = segment
		case f.Neighborhood == "":
			f.Neighborhood = segment
		default:
			leftover = append(leftover, segment)
		}
	}

	return f, strings.Join(leftover, ", ")
}

func hasComplementLabel(segment string) bool {
	return len(segment) >= len("complemento:") &&
		strings.EqualFold(segment[:len("complemento:")], "complemento:")
}

func startsWithComplementToken(segment string) bool {
	first := strings.ToLower(segment)
	if idx := strings.IndexAny(first, " \t"); idx >= 0 {
		first = first[:idx]
	}
	for _, token := range complementTokens {
		if first == token {
			return true
		}
	}

	return false
}

func appendComplement(f *Fields, value string) {
	if value == "" {
		return
	}
	if f.Complement == "" {
		f.Complement = value

		return
	}
	f.Complement += ", " + value
}
