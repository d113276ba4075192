// Package docs registers the swagger document of the HTTP gateway.
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
        "/api/v1/calendar/call": {
            "post": {
                "description": "Body is {\"function\": name, \"args\": {...}}; response is the result envelope",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Call a calendar function",
                "parameters": [
                    {
                        "description": "Function call",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/httpserver.callRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Success envelope", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Error envelope", "schema": {"type": "object", "additionalProperties": true}},
                    "429": {"description": "Rate limit exceeded", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/tasks/call": {
            "post": {
                "description": "Body is {\"function\": name, \"args\": {...}}; response is the result envelope",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Call a task function",
                "parameters": [
                    {
                        "description": "Function call",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/httpserver.callRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Success envelope", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Error envelope", "schema": {"type": "object", "additionalProperties": true}},
                    "429": {"description": "Rate limit exceeded", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "httpserver.callRequest": {
            "type": "object",
            "properties": {
                "args": {"type": "object", "additionalProperties": true},
                "function": {"type": "string", "example": "get_tasks"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Assistant Tools API",
	Description:      "Calendar and task functions over an HTTP gateway.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
