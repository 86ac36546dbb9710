package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SettingsSchema returns the JSON schema describing settings.json
func SettingsSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Settings{})
	schema.Title = "tmlsync settings"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings schema: %w", err)
	}
	return data, nil
}
