// Package validator provides small declarative validation rules for the
// registration number formats implemented by pkg/grn.
//
// Every exported validation function constructs a Rule value pairing a
// boolean Check with field-level error metadata. Rules are evaluated with
// Apply, which aggregates failures into a ValidationErrors slice satisfying
// the error interface, so several field problems surface in one error return.
//
//	err := validator.Apply(
//	    validator.ValidOGRN("ogrn", company.OGRN),
//	    validator.ValidGRN("record", record.Number),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect per-field messages
//	}
//
// The package holds no state and is safe for concurrent use.
package validator
