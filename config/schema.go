package config

import (
	"github.com/invopop/jsonschema"
)

// Schema reflects Config into a JSON schema for editor validation of config files
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		FieldNameTag:               "toml",
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(Config))
	schema.Title = "Galaxy Monkey configuration"
	schema.Description = "Validates galaxy-monkey TOML configuration files"
	return schema
}
