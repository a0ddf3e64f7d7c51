package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// NewSanthoshCompiler returns a Compiler backed by santhosh-tekuri/jsonschema/v6.
func NewSanthoshCompiler() Compiler {
	return &santhoshCompiler{c: jsonschema.NewCompiler(), added: map[string]bool{}}
}

type santhoshValidator struct {
	v *jsonschema.Schema
}

func (sv *santhoshValidator) Validate(doc JSONDocument) error {
	return sv.v.Validate(doc)
}

type santhoshCompiler struct {
	mu    sync.Mutex
	c     *jsonschema.Compiler
	added map[string]bool
}

func (s *santhoshCompiler) AddSchema(id string, schema JSONSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.added[id] {
		return nil
	}
	if err := s.c.AddResource(id, schema); err != nil {
		return err
	}
	s.added[id] = true
	return nil
}

func (s *santhoshCompiler) Compile(id string) (Validator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.c.Compile(id)
	if err != nil {
		return nil, err
	}
	return &santhoshValidator{v: v}, nil
}

// ParseJSON decodes data into a JSONDocument with numbers kept as json.Number,
// the representation the validator expects.
func ParseJSON(data []byte) (JSONDocument, error) {
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// ToJSONDocument converts a value decoded from another format, such as YAML,
// into a JSONDocument.
func ToJSONDocument(v any) (JSONDocument, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("document is not representable as JSON: %w", err)
	}
	return ParseJSON(data)
}

// CompileSchema registers raw JSON Schema bytes under id and compiles them.
func CompileSchema(c Compiler, id string, raw []byte) (Validator, error) {
	schema, err := ParseJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("schema %s is not valid JSON: %w", id, err)
	}
	if err := c.AddSchema(id, schema); err != nil {
		return nil, err
	}
	return c.Compile(id)
}
