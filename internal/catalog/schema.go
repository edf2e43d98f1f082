package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed items.schema.json
var itemsSchema []byte

// compiledSchema is compiled on first use and shared by every Parse call
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(itemsSchema))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaParseFailed, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(ItemsSchemaName, doc); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaCompileFailed, err)
	}
	schema, err := compiler.Compile(ItemsSchemaName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaCompileFailed, err)
	}
	return schema, nil
})

// checkSchema validates raw catalog JSON against the embedded schema
func checkSchema(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		return fmt.Errorf("%w: schema violations:\n%s", ErrInvalidCatalog, strings.Join(violations(verr, nil), "\n"))
	}
	return nil
}

// violations flattens a validation error tree into one line per failing leaf
func violations(err *jsonschema.ValidationError, out []string) []string {
	if len(err.Causes) == 0 {
		location := "/" + strings.Join(err.InstanceLocation, "/")
		keyword := "schema"
		if err.ErrorKind != nil {
			if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
				keyword = strings.Join(path, ".")
			}
		}
		return append(out, fmt.Sprintf("  - %s: %s", location, keyword))
	}
	for _, cause := range err.Causes {
		out = violations(cause, out)
	}
	return out
}
