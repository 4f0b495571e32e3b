package servers

import (
	_ "embed"
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, err
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, err
	}
	return swagger, nil
}

// SpecJSON returns the document converted to JSON, the form Swagger UI loads.
func SpecJSON() ([]byte, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(swagger)
}
