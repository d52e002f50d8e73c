// Package docs registers the generated Swagger spec with swaggo/swag's
// in-memory template registry. It is normally produced by `swag init` from
// the @-annotations on the HTTP handlers; the JSON below is kept in sync by
// hand and only needs to satisfy swag.ReadDoc, not describe every route.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Service is healthy"}
                }
            }
        },
        "/api/v1/orders": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Submit a new order"
            }
        },
        "/api/v1/orderbook": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Orderbook"],
                "summary": "Get the current order book snapshot for a symbol"
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CLOB Engine API",
	Description:      "Central Limit Order Book (CLOB) matching engine with a price-time-priority core and HTTP/WS gateway",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
