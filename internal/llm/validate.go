package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var compiled sync.Map // schema name -> *jsonschema.Schema

// Check validates raw model output against the schema. Any failure,
// including malformed JSON, is an *Error with CodeInvalidOutput.
func (s *Schema) Check(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return invalidOutput(raw, "not JSON: %w", err)
	}
	sch, err := s.compile()
	if err != nil {
		return invalidOutput(raw, "schema %q: %w", s.Name, err)
	}
	if err := sch.Validate(doc); err != nil {
		return invalidOutput(raw, "does not match %q: %w", s.Name, err)
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	if c, ok := compiled.Load(s.Name); ok {
		return c.(*jsonschema.Schema), nil
	}

	// AddResource wants decoded JSON values, so normalise the Go map
	// (typed slices, ints) through a round trip.
	b, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := "schema://quizdeck/llm/" + s.Name + ".json"
	if err := c.AddResource(url, def); err != nil {
		return nil, err
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	actual, _ := compiled.LoadOrStore(s.Name, sch)
	return actual.(*jsonschema.Schema), nil
}
