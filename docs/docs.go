// Package docs registers the OpenAPI document served at /swagger/*.
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
        "/health": {
            "get": {
                "description": "Overall status with the view and broker components",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Application is healthy",
                        "schema": {
                            "$ref": "#/definitions/model.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "A component is down",
                        "schema": {
                            "$ref": "#/definitions/model.HealthResponse"
                        }
                    }
                }
            }
        },
        "/weather": {
            "get": {
                "description": "Current view state with the icon, advice and time period of every forecast",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weather"
                ],
                "summary": "Get the weather view",
                "responses": {
                    "200": {
                        "description": "Current weather view",
                        "schema": {
                            "$ref": "#/definitions/model.ViewResponse"
                        }
                    }
                }
            }
        },
        "/weather/regions": {
            "get": {
                "description": "Configured top-level regions with their townships",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weather"
                ],
                "summary": "List regions",
                "responses": {
                    "200": {
                        "description": "Region list",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/entity.Region"
                            }
                        }
                    }
                }
            }
        },
        "/weather/selection": {
            "post": {
                "description": "Record the selection and load its weather in the background. An empty or 目前位置 cityName uses the current position.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weather"
                ],
                "summary": "Select a location",
                "parameters": [
                    {
                        "description": "Selected location",
                        "name": "selection",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.SelectionDTO"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Selection accepted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/weather/stream": {
            "get": {
                "description": "Server-Sent Events: a state event on connect and on every change, an alert event on fetch failures",
                "produces": [
                    "text/event-stream"
                ],
                "tags": [
                    "weather"
                ],
                "summary": "Stream the weather view",
                "responses": {
                    "200": {
                        "description": "Event stream",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "entity.Region": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "townships": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "model.Advice": {
            "type": "object",
            "properties": {
                "clothIcon": {
                    "type": "string"
                },
                "clothText": {
                    "type": "string"
                },
                "rainIcon": {
                    "type": "string"
                },
                "rainText": {
                    "type": "string"
                }
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "status": {
                    "$ref": "#/definitions/model.HealthStatus"
                }
            }
        },
        "model.ForecastView": {
            "type": "object",
            "properties": {
                "advice": {
                    "$ref": "#/definitions/model.Advice"
                },
                "endTime": {
                    "type": "string"
                },
                "humidity": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "maxApparentTemp": {
                    "type": "string"
                },
                "maxTemp": {
                    "type": "string"
                },
                "minApparentTemp": {
                    "type": "string"
                },
                "minTemp": {
                    "type": "string"
                },
                "period": {
                    "type": "string"
                },
                "rain": {
                    "type": "string"
                },
                "startTime": {
                    "type": "string"
                },
                "weather": {
                    "type": "string"
                },
                "windSpeed": {
                    "type": "string"
                }
            }
        },
        "entity.Forecast": {
            "type": "object",
            "properties": {
                "endTime": {
                    "type": "string"
                },
                "humidity": {
                    "type": "string"
                },
                "maxApparentTemp": {
                    "type": "string"
                },
                "maxTemp": {
                    "type": "string"
                },
                "minApparentTemp": {
                    "type": "string"
                },
                "minTemp": {
                    "type": "string"
                },
                "rain": {
                    "type": "string"
                },
                "startTime": {
                    "type": "string"
                },
                "weather": {
                    "type": "string"
                },
                "windSpeed": {
                    "type": "string"
                }
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "broker": {
                    "$ref": "#/definitions/model.ComponentHealthStatus"
                },
                "status": {
                    "$ref": "#/definitions/model.HealthStatus"
                },
                "view": {
                    "$ref": "#/definitions/model.ComponentHealthStatus"
                }
            }
        },
        "model.HealthStatus": {
            "type": "string",
            "enum": [
                "UP",
                "DOWN",
                "UNKNOWN"
            ],
            "x-enum-varnames": [
                "StatusUp",
                "StatusDown",
                "StatusUnknown"
            ]
        },
        "model.SelectionDTO": {
            "type": "object",
            "properties": {
                "cityName": {
                    "type": "string"
                },
                "countyName": {
                    "type": "string"
                }
            }
        },
        "model.ViewResponse": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "forecasts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/entity.Forecast"
                    }
                },
                "isLoading": {
                    "type": "boolean"
                },
                "selectedCity": {
                    "type": "string"
                },
                "updateDate": {
                    "type": "string"
                },
                "views": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.ForecastView"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/weather-view",
	Schemes:          []string{},
	Title:            "Weather View API",
	Description:      "Weather view-model: forecasts for a selected Taiwan location with display hints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
