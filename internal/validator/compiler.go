// Package validator checks documents against JSON Schemas.
package validator

// A JSONDocument is a parsed JSON value as produced by ParseJSON.
type JSONDocument interface{}

// A JSONSchema is a JSONDocument holding a JSON Schema. It is only known to be
// a valid schema once a Compiler has compiled it.
type JSONSchema JSONDocument

// Validator validates documents against one compiled schema.
type Validator interface {
	// Validate returns a descriptive error if doc does not conform.
	Validate(doc JSONDocument) error
}

// Compiler turns registered schemas into Validators.
type Compiler interface {
	// AddSchema registers a schema under id. Registering an id again keeps
	// the first schema.
	AddSchema(id string, schema JSONSchema) error

	// Compile builds a Validator for the schema registered under id.
	Compile(id string) (Validator, error)
}
