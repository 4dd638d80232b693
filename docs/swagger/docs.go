// Package swagger holds the OpenAPI document served at /swagger, laid out the
// way swaggo/swag emits it.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
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
        "/articles": {
            "get": {
                "description": "Returns every article, sorted ascending by the given field. Unknown fields sort by name.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "articles"
                ],
                "summary": "List articles",
                "parameters": [
                    {
                        "enum": [
                            "name",
                            "count",
                            "id",
                            "unit"
                        ],
                        "type": "string",
                        "default": "name",
                        "description": "Sort field",
                        "name": "sort",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Article"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Registers a new article. The Location header points at the created resource.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "articles"
                ],
                "summary": "Create article",
                "parameters": [
                    {
                        "description": "Article registration",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateArticleRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/Article"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "/api/v1/articles/{id}"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ValidationErrorResponse"
                        }
                    }
                }
            }
        },
        "/articles/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "articles"
                ],
                "summary": "Get article",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Article ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Article"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "articles"
                ],
                "summary": "Delete article",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Article ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "description": "Overwrites only the fields present in the body. A lower count records the difference as today's usage.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "articles"
                ],
                "summary": "Update article",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Article ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PatchArticleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Article"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ValidationErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usage": {
            "get": {
                "description": "Sums recorded usage per day over [start, end]. end defaults to today and start to 13 days before end. Days without usage are omitted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usage"
                ],
                "summary": "Daily usage report",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Article ID",
                        "name": "articleId",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "First day (YYYY-MM-DD)",
                        "name": "start",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last day (YYYY-MM-DD)",
                        "name": "end",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DailyUsage"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "Article": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "Wound care"
                },
                "count": {
                    "type": "integer",
                    "example": 50
                },
                "description": {
                    "type": "string",
                    "example": "Sterile gauze compresses 10x10 cm"
                },
                "icon": {
                    "type": "string",
                    "example": "bandage"
                },
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "name": {
                    "type": "string",
                    "example": "Gauze"
                },
                "price": {
                    "type": "string",
                    "example": "129 kr"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Critical",
                        "Low",
                        "High"
                    ],
                    "example": "Low"
                },
                "supplier": {
                    "type": "string",
                    "example": "Mölnlycke"
                },
                "unit": {
                    "type": "string",
                    "example": "box"
                }
            }
        },
        "CreateArticleRequest": {
            "type": "object",
            "required": [
                "count",
                "name",
                "unit"
            ],
            "properties": {
                "count": {
                    "type": "integer",
                    "maximum": 2147483647,
                    "minimum": 0,
                    "example": 50
                },
                "name": {
                    "type": "string",
                    "maxLength": 255,
                    "example": "Gauze"
                },
                "unit": {
                    "type": "string",
                    "maxLength": 255,
                    "example": "box"
                }
            }
        },
        "DailyUsage": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2026-10-17"
                },
                "total": {
                    "type": "integer",
                    "example": 20
                }
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "article not found"
                }
            }
        },
        "PatchArticleRequest": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "Wound care"
                },
                "count": {
                    "type": "integer",
                    "maximum": 2147483647,
                    "minimum": 0,
                    "example": 30
                },
                "description": {
                    "type": "string",
                    "maxLength": 1000,
                    "example": "Sterile gauze compresses 10x10 cm"
                },
                "icon": {
                    "type": "string",
                    "example": "bandage"
                },
                "price": {
                    "type": "string",
                    "example": "129 kr"
                },
                "supplier": {
                    "type": "string",
                    "example": "Mölnlycke"
                }
            }
        },
        "ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Validation failed"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "medsupply API",
	Description:      "Medical supply inventory: articles, stock counts and daily usage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
