package validator

import "github.com/tooloolooz/bumazhka/pkg/grn"

// ValidGRN validates that a string is a state registration number of any
// supported type (OGRN, OGRNIP, GRN EGRUL, GRN EGRIP).
func ValidGRN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return grn.IsValid(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid state registration number",
		},
	}
}

// ValidOGRN validates that a string is a valid OGRN of a legal entity.
func ValidOGRN(field, value string) Rule {
	return registryRule(field, value, grn.TypeOGRN, "must be a valid OGRN")
}

// ValidOGRNIP validates that a string is a valid OGRNIP of an individual
// entrepreneur.
func ValidOGRNIP(field, value string) Rule {
	return registryRule(field, value, grn.TypeOGRNIP, "must be a valid OGRNIP")
}

// ValidGRNEGRUL validates that a string is a valid registration number of a
// record in the legal entities register.
func ValidGRNEGRUL(field, value string) Rule {
	return registryRule(field, value, grn.TypeGRNEGRUL, "must be a valid GRN EGRUL record number")
}

// ValidGRNEGRIP validates that a string is a valid registration number of a
// record in the individual entrepreneurs register.
func ValidGRNEGRIP(field, value string) Rule {
	return registryRule(field, value, grn.TypeGRNEGRIP, "must be a valid GRN EGRIP record number")
}

func registryRule(field, value string, typ grn.Type, message string) Rule {
	return Rule{
		Check: func() bool {
			valid, err := grn.IsValidType(value, typ)
			return err == nil && valid
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
