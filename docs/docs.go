package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/convert": {
            "get": {
                "tags": ["calendar"],
                "summary": "Convert a Gregorian date",
                "description": "Convert a Gregorian date to the Ethiopian calendar",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Gregorian date in yyyy-mm-dd format",
                        "name": "date",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.ConversionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ports.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/today": {
            "get": {
                "tags": ["calendar"],
                "summary": "Convert today's date",
                "description": "Convert the current date to the Ethiopian calendar",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.ConversionResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "ports.ConversionResponse": {
            "type": "object",
            "properties": {
                "numeric": {
                    "type": "string",
                    "example": "2016-01-01"
                },
                "verbose": {
                    "type": "string",
                    "example": "ሰኞ, መስከረም 01, 2016"
                }
            }
        },
        "ports.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Date must be in yyyy-mm-dd format"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Ethiopian Calendar API",
	Description:      "Converts Gregorian dates to the Ethiopian calendar",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
