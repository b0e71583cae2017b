package http

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadSwagger parses the embedded OpenAPI document and points its server at
// basePath so routes resolve under the configured prefix.
func LoadSwagger(basePath string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("loading OpenAPI document: %w", err)
	}

	if err := swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating OpenAPI document: %w", err)
	}

	swagger.Servers = openapi3.Servers{
		&openapi3.Server{URL: basePath},
	}

	return swagger, nil
}
