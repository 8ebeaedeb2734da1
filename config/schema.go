package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaID is the identifier of the configuration schema.
const SchemaID = "https://github.com/mkloubert/js-strings/config.schema.json"

// Schema returns the JSON schema describing configuration files.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}

	s := r.Reflect(&Config{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "js-strings configuration"

	return json.MarshalIndent(s, "", "  ")
}
