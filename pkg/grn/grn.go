package grn

import (
	"strconv"
	"strings"
)

// Type identifies a state registration number format.
type Type uint8

const (
	// TypeOGRN is the primary state registration number of a legal entity:
	// 13 digits, first digit 1 or 5.
	TypeOGRN Type = iota + 1
	// TypeGRNEGRUL is the registration number of a record in the legal
	// entities register (EGRUL): 13 digits, first digit 2 or 6-9.
	TypeGRNEGRUL
	// TypeOGRNIP is the primary state registration number of an individual
	// entrepreneur: 15 digits, first digit 3.
	TypeOGRNIP
	// TypeGRNEGRIP is the registration number of a record in the individual
	// entrepreneurs register (EGRIP): 15 digits, first digit 4.
	TypeGRNEGRIP
	// TypeAny matches any of the four concrete formats.
	TypeAny
)

// typeNames maps types to their wire names, used by String and ParseType.
var typeNames = map[Type]string{
	TypeOGRN:     "ogrn",
	TypeGRNEGRUL: "grn-egrul",
	TypeOGRNIP:   "ogrnip",
	TypeGRNEGRIP: "grn-egrip",
	TypeAny:      "any",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType converts a wire name into a Type. The comparison is
// case-insensitive; unknown names return ErrUnknownType.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(s)
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, ErrUnknownType
}

// format describes the structural rules of one concrete registration number
// type: total length, permitted first characters, and the checksum divisor.
// The region code always occupies bytes [3:5] and the check digit is always
// the last byte.
type format struct {
	length  int
	first   string
	divisor int64
}

var formats = map[Type]format{
	TypeOGRN:     {length: 13, first: "15", divisor: 11},
	TypeGRNEGRUL: {length: 13, first: "26789", divisor: 11},
	TypeOGRNIP:   {length: 15, first: "3", divisor: 13},
	TypeGRNEGRIP: {length: 15, first: "4", divisor: 13},
}

// anyOrder fixes the order in which the untyped check tries the concrete
// formats. The formats are mutually exclusive by first character, so the
// order only affects which check short-circuits first.
var anyOrder = [...]Type{TypeOGRN, TypeGRNEGRUL, TypeOGRNIP, TypeGRNEGRIP}

// IsValid reports whether grn is a valid state registration number of any
// supported type. The type is detected from the length and first character.
func IsValid(grn string) bool {
	for _, t := range anyOrder {
		if matches(grn, formats[t]) {
			return true
		}
	}
	return false
}

// IsValidType reports whether grn is a valid state registration number of the
// given type. TypeAny behaves like IsValid. An unknown type returns
// ErrUnknownType; a well-formed type with an invalid number returns
// (false, nil).
func IsValidType(grn string, typ Type) (bool, error) {
	if typ == TypeAny {
		return IsValid(grn), nil
	}
	f, ok := formats[typ]
	if !ok {
		return false, ErrUnknownType
	}
	return matches(grn, f), nil
}

// matches runs the structural checks and the checksum for one format, in
// order: length, first character, year digits, region code, body digits,
// check digit. The first failing rule decides the result.
func matches(grn string, f format) bool {
	if len(grn) != f.length {
		return false
	}
	if strings.IndexByte(f.first, grn[0]) < 0 {
		return false
	}
	// Two-digit year of the record. Digit-only, no calendar validation.
	if !isDigit(grn[1]) || !isDigit(grn[2]) {
		return false
	}
	if !regionCodes[grn[3:5]] {
		return false
	}
	// Sequential record number between the region code and the check digit.
	for i := 5; i < f.length-1; i++ {
		if !isDigit(grn[i]) {
			return false
		}
	}
	return checksum(grn, f.divisor)
}

// checksum verifies the trailing check digit: the number formed by all
// preceding digits, integer-divided by the family divisor, must end in the
// check digit. The structural checks guarantee digit-only input here; a
// parse failure is treated as a checksum failure all the same.
func checksum(grn string, divisor int64) bool {
	last := len(grn) - 1
	n, err := strconv.ParseInt(grn[:last], 10, 64)
	if err != nil {
		return false
	}
	return n/divisor%10 == int64(grn[last]-'0')
}

// isDigit reports whether c is an ASCII digit. Deliberately narrower than
// unicode.IsDigit: registration numbers use '0'-'9' only.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
