// Package grn validates Russian state registration numbers: OGRN and OGRNIP
// (primary registration of legal entities and individual entrepreneurs) and
// the record numbers of subsequent register entries (GRN EGRUL, GRN EGRIP).
//
// Validation covers the full formal ruleset: exact length (13 digits for the
// EGRUL family, 15 for EGRIP), the type-identifying first digit, a valid
// region code of a Russian Federation subject at positions 4-5, digit-only
// body, and the trailing check digit derived from the preceding number by
// integer division (divisor 11 for EGRUL, 13 for EGRIP) modulo 10.
//
// Only ASCII digits '0'-'9' are accepted; inputs are never trimmed or
// normalized. Anything that fails a rule is simply not a valid number — the
// package returns false rather than an error for malformed input. The single
// error condition is passing an unknown Type to IsValidType.
//
// # Usage
//
//	grn.IsValid("1009900000000")                    // true, detected as OGRN
//	grn.IsValidType("1009900000000", grn.TypeOGRN)  // true, nil
//	grn.IsValidType("1009900000000", grn.TypeAny)   // same as IsValid
//
// The package holds no mutable state and is safe for concurrent use.
package grn
