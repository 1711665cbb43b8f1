// Package docs registers the API description served by the Swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/draft": {
            "get": {
                "produces": ["application/json"],
                "summary": "Current draft",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DraftResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Change one draft field",
                "parameters": [
                    {"description": "change event", "name": "change", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FieldChange"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DraftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/draft/submit": {
            "post": {
                "produces": ["application/json"],
                "summary": "Submit the current draft",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.RestaurantDraft"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/restaurants": {
            "get": {
                "produces": ["application/json"],
                "summary": "List restaurants",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RestaurantListResult"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Submit a restaurant",
                "parameters": [
                    {"description": "restaurant", "name": "restaurant", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.RestaurantDraft"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.RestaurantDraft"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.DraftResponse": {
            "type": "object",
            "properties": {
                "session": {"type": "string"},
                "status": {"type": "string", "enum": ["clean", "editing"]},
                "draft": {"$ref": "#/definitions/model.RestaurantDraft"}
            }
        },
        "handler.FieldChange": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "enum": ["name", "image", "address", "phone", "cuisine", "rating"]},
                "value": {"type": "string"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "error": {"$ref": "#/definitions/handler.errorEnvelope"}
            }
        },
        "model.RestaurantDraft": {
            "type": "object",
            "required": ["name", "image", "address", "phone", "cuisine", "rating"],
            "properties": {
                "name": {"type": "string"},
                "image": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "cuisine": {"type": "string"},
                "rating": {"type": "string"}
            }
        },
        "service.RestaurantListResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.RestaurantDraft"}},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Restaurant Form API",
	Description:      "Add restaurants through a controlled form and list them in submission order.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
