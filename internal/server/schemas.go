package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	cubeRequestSchema     = mustCompileSchema("schemas/cube_request.json")
	playbackRequestSchema = mustCompileSchema("schemas/playback_request.json")
)

func mustCompileSchema(name string) *jsonschema.Schema {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("server: missing schema %s: %v", name, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, bytes.NewReader(data)); err != nil {
		panic(fmt.Sprintf("server: bad schema %s: %v", name, err))
	}
	return c.MustCompile(name)
}

// decodeAndValidate unmarshals the request body twice: once into a generic
// value for schema validation, once into the typed target.
func decodeAndValidate(r io.Reader, schema *jsonschema.Schema, target any) error {
	body, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	return decodeAndValidateBytes(body, schema, target)
}

func decodeAndValidateBytes(body []byte, schema *jsonschema.Schema, target any) error {
	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}
