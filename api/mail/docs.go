// Package mail registers the generated Swagger specification for the
// mail service API. Regenerate with `swag init` after changing handler
// annotations.
package mail

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Lif Platforms",
            "url": "https://github.com/lif-platforms"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Welcome",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/waitlist/ringer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Waitlist"],
                "summary": "Join Ringer Waitlist",
                "parameters": [
                    {"description": "Signup email", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/mailapi.WaitlistJoinRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mailapi.StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}}
                }
            }
        },
        "/admin/create_credentials": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Credentials"],
                "summary": "Create API Credentials",
                "parameters": [
                    {"type": "string", "description": "Caller session identity", "name": "X-Auth-Identity", "in": "header", "required": true},
                    {"type": "string", "description": "Caller session token", "name": "X-Auth-Token", "in": "header", "required": true},
                    {"type": "string", "description": "Human-readable credential label", "name": "name", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/mailapi.CreateCredentialsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}}
                }
            }
        },
        "/admin/modify_permissions/{client_id}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Permissions"],
                "summary": "Grant Permissions",
                "parameters": [
                    {"type": "string", "description": "Caller session identity", "name": "X-Auth-Identity", "in": "header", "required": true},
                    {"type": "string", "description": "Caller session token", "name": "X-Auth-Token", "in": "header", "required": true},
                    {"type": "string", "description": "Client ID", "name": "client_id", "in": "path", "required": true},
                    {"description": "Permission nodes", "name": "nodes", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "string"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}}
                }
            },
            "delete": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Permissions"],
                "summary": "Revoke Permissions",
                "parameters": [
                    {"type": "string", "description": "Caller session identity", "name": "X-Auth-Identity", "in": "header", "required": true},
                    {"type": "string", "description": "Caller session token", "name": "X-Auth-Token", "in": "header", "required": true},
                    {"type": "string", "description": "Client ID", "name": "client_id", "in": "path", "required": true},
                    {"description": "Permission nodes", "name": "nodes", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "string"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}}
                }
            }
        },
        "/admin/get_permissions/{client_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Permissions"],
                "summary": "View Permissions",
                "parameters": [
                    {"type": "string", "description": "Caller session identity", "name": "X-Auth-Identity", "in": "header", "required": true},
                    {"type": "string", "description": "Caller session token", "name": "X-Auth-Token", "in": "header", "required": true},
                    {"type": "string", "description": "Client ID", "name": "client_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mailapi.GetPermissionsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}}
                }
            }
        },
        "/admin/remove_credentials/{client_id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Credentials"],
                "summary": "Remove API Credentials",
                "parameters": [
                    {"type": "string", "description": "Caller session identity", "name": "X-Auth-Identity", "in": "header", "required": true},
                    {"type": "string", "description": "Caller session token", "name": "X-Auth-Token", "in": "header", "required": true},
                    {"type": "string", "description": "Client ID", "name": "client_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}}
                }
            }
        },
        "/admin/get_waitlist": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Waitlist"],
                "summary": "View Waitlist",
                "parameters": [
                    {"type": "string", "description": "Caller session identity", "name": "X-Auth-Identity", "in": "header", "required": true},
                    {"type": "string", "description": "Caller session token", "name": "X-Auth-Token", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mailapi.GetWaitlistResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}}
                }
            }
        },
        "/send_email": {
            "post": {
                "security": [{"BasicAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Relay"],
                "summary": "Send Email",
                "parameters": [
                    {"description": "Message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/mailapi.SendEmailRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mailapi.StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/mailapi.ErrorResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mailapi.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mailapi.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/mailapi.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "mailapi.CreateCredentialsResponse": {
            "type": "object",
            "properties": {
                "client_id": {"type": "string"},
                "client_secret": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "mailapi.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        },
        "mailapi.GetPermissionsResponse": {
            "type": "object",
            "properties": {
                "client_id": {"type": "string"},
                "name": {"type": "string"},
                "permissions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "mailapi.GetWaitlistResponse": {
            "type": "object",
            "properties": {
                "emails": {"type": "array", "items": {"type": "string"}}
            }
        },
        "mailapi.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/mailapi.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "mailapi.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        },
        "mailapi.SendEmailRequest": {
            "type": "object",
            "properties": {
                "body": {"type": "string"},
                "recipient": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "mailapi.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "mailapi.WaitlistJoinRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BasicAuth": {
            "type": "basic"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8005",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Lif Mail Service API",
	Description:      "Waitlist capture, outbound email relay, and API credential administration for Lif Platforms services.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
