// Package docs registers the hand-maintained OpenAPI description served under
// /swagger/. Keep it in sync with the routes in internal/delivery/http.
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
        "/admin/confirmados": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns every confirmation, newest first, with dates formatted as dd/mm/yyyy hh:mm.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List confirmations",
                "parameters": [
                    {"type": "string", "description": "Admin password (alternative to the Bearer token)", "name": "senha", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListResponse"}},
                    "401": {"description": "Senha incorreta", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/admin/confirmados/csv": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Downloads every confirmation, newest first, as a CSV attachment named confirmacoes_YYYYMMDD_HHMMSS.csv.",
                "produces": ["text/csv"],
                "tags": ["admin"],
                "summary": "Export confirmations as CSV",
                "parameters": [
                    {"type": "string", "description": "Admin password (alternative to the Bearer token)", "name": "senha", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "401": {"description": "Senha incorreta", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "description": "Exchanges the admin password for a Bearer token accepted by the admin endpoints.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Admin password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "Senha incorreta", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/confirmar-presenca": {
            "post": {
                "description": "Registers the guest's attendance. The name is trimmed and must have between 3 and 100 characters. Each name can confirm only once. The organizer is notified by email in the background.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["confirmations"],
                "summary": "Confirm attendance",
                "parameters": [
                    {"description": "Guest name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ConfirmRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Confirmation"}},
                    "400": {"description": "Malformed JSON or name already confirmed", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "Invalid name", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.ConfirmRequest": {
            "type": "object",
            "required": ["nome"],
            "properties": {
                "nome": {"type": "string", "maxLength": 100, "minLength": 3, "example": "Maria Silva"}
            }
        },
        "controllers.ListResponse": {
            "type": "object",
            "properties": {
                "confirmacoes": {"type": "array", "items": {"$ref": "#/definitions/controllers.ListedConfirmation"}},
                "total": {"type": "integer"}
            }
        },
        "controllers.ListedConfirmation": {
            "type": "object",
            "properties": {
                "data_confirmacao": {"type": "string", "example": "10/01/2026 13:05"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "required": ["senha"],
            "properties": {
                "senha": {"type": "string"}
            }
        },
        "controllers.LoginResponse": {
            "type": "object",
            "properties": {
                "expires_in": {"type": "integer"},
                "token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "domain.Confirmation": {
            "type": "object",
            "properties": {
                "data_confirmacao": {"type": "string"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the token from POST /admin/login.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RSVP API",
	Description:      "Attendance confirmations for the event and the organizer's admin listing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
