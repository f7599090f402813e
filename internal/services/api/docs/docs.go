// Package docs embeds the OpenAPI document served at /api/docs
package docs

import _ "embed"

// JSON is the OpenAPI 3 document for the convertis API
//
//go:embed openapi.json
var JSON []byte
