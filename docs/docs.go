// Package docs holds the OpenAPI definition served under /swagger.
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
        "/favorites": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "favorite"
                ],
                "summary": "Get favorites",
                "description": "Reload and return the stored favorites, newest first",
                "responses": {
                    "200": {
                        "description": "Stored favorites",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Favorite"
                            }
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "favorite"
                ],
                "summary": "Save the current weather as a favorite",
                "description": "Add the currently loaded weather to the favorites. Adding the same coordinates twice changes nothing.",
                "responses": {
                    "200": {
                        "description": "Favorites after the add",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Favorite"
                            }
                        }
                    },
                    "409": {
                        "description": "No weather loaded",
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
        "/favorites/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "favorite"
                ],
                "summary": "Remove a favorite",
                "description": "Drop the favorite with the given coordinate key",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Favorite id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Favorites after the removal",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Favorite"
                            }
                        }
                    }
                }
            }
        },
        "/favorites/{id}/weather": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "favorite"
                ],
                "summary": "Load weather for a favorite",
                "description": "Load current weather and forecast for a stored favorite",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Favorite id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session state after the load",
                        "schema": {
                            "$ref": "#/definitions/model.SessionSnapshot"
                        }
                    },
                    "404": {
                        "description": "Favorite not found",
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
        "/feedback": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "feedback"
                ],
                "summary": "List feedback",
                "responses": {
                    "200": {
                        "description": "Stored entries",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/entity.Feedback"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "feedback"
                ],
                "summary": "Submit feedback",
                "parameters": [
                    {
                        "description": "Feedback entry",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.CreateFeedbackDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Stored entry",
                        "schema": {
                            "$ref": "#/definitions/entity.Feedback"
                        }
                    },
                    "400": {
                        "description": "Missing message",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
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
        "/location/ip": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Resolve location from IP",
                "responses": {
                    "200": {
                        "description": "Approximate location",
                        "schema": {
                            "$ref": "#/definitions/model.ResolvedLocation"
                        }
                    },
                    "502": {
                        "description": "Lookup failed",
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
        "/location/permission": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Get geolocation permission state",
                "responses": {
                    "200": {
                        "description": "Permission state",
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
        "/location/resolve": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Resolve the current location",
                "responses": {
                    "200": {
                        "description": "Resolved location with its source",
                        "schema": {
                            "$ref": "#/definitions/model.ResolvedLocation"
                        }
                    },
                    "502": {
                        "description": "Both resolutions failed",
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
        "/pages": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "page"
                ],
                "summary": "List pages",
                "description": "Return every navigable page with its path and title",
                "responses": {
                    "200": {
                        "description": "Pages in navigation order",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.PageMeta"
                            }
                        }
                    }
                }
            }
        },
        "/pages/{path}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "page"
                ],
                "summary": "Get page metadata by path",
                "description": "Return the page matching the given path. Unknown paths redirect to the home page entry.",
                "responses": {
                    "200": {
                        "description": "Page metadata",
                        "schema": {
                            "$ref": "#/definitions/model.PageMeta"
                        }
                    },
                    "302": {
                        "description": "Redirect to the home page entry",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/session": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Get session state",
                "description": "Retrieve the current weather session state",
                "responses": {
                    "200": {
                        "description": "Session state",
                        "schema": {
                            "$ref": "#/definitions/model.SessionSnapshot"
                        }
                    }
                }
            }
        },
        "/session/location": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Load weather for the current location",
                "description": "Resolve the device position and load current weather and forecast for it",
                "responses": {
                    "200": {
                        "description": "Session state after the load",
                        "schema": {
                            "$ref": "#/definitions/model.SessionSnapshot"
                        }
                    }
                }
            }
        },
        "/session/search": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Search weather by city name",
                "description": "Resolve the query to its first matching city and load that city's weather",
                "parameters": [
                    {
                        "description": "Search query",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.searchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session state after the search",
                        "schema": {
                            "$ref": "#/definitions/model.SessionSnapshot"
                        }
                    }
                }
            }
        },
        "/session/search/input": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Autocomplete city search",
                "description": "Refresh autocomplete suggestions for the typed query",
                "parameters": [
                    {
                        "description": "Typed query",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.searchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Suggestions",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.CitySuggestion"
                            }
                        }
                    }
                }
            }
        },
        "/session/search/select": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Select an autocomplete suggestion",
                "description": "Load weather for the chosen suggestion",
                "parameters": [
                    {
                        "description": "Chosen suggestion",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.CitySuggestion"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session state after the load",
                        "schema": {
                            "$ref": "#/definitions/model.SessionSnapshot"
                        }
                    }
                }
            }
        },
        "/session/weather": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Load weather for coordinates",
                "description": "Load current weather and forecast for a coordinate pair",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Latitude",
                        "name": "lat",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Longitude",
                        "name": "lon",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session state after the load",
                        "schema": {
                            "$ref": "#/definitions/model.SessionSnapshot"
                        }
                    },
                    "400": {
                        "description": "Missing coordinates",
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
        "/storage": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "storage"
                ],
                "summary": "Clear the storage",
                "description": "Remove all stored favorites, theme preference and last location",
                "responses": {
                    "200": {
                        "description": "Cleared",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Storage unavailable",
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
        "/storage/last-location": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "storage"
                ],
                "summary": "Get the last saved location",
                "description": "Return the last coordinate a weather load succeeded for",
                "responses": {
                    "200": {
                        "description": "Last saved location",
                        "schema": {
                            "$ref": "#/definitions/model.LastLocation"
                        }
                    },
                    "404": {
                        "description": "Nothing saved yet",
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
        "/storage/usage": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "storage"
                ],
                "summary": "Get storage usage",
                "description": "Report the stored byte size of each logical key",
                "responses": {
                    "200": {
                        "description": "Usage per key",
                        "schema": {
                            "$ref": "#/definitions/model.UsageReport"
                        }
                    }
                }
            }
        },
        "/theme": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "theme"
                ],
                "summary": "Get the active theme",
                "description": "Report whether dark mode is active",
                "responses": {
                    "200": {
                        "description": "Active theme",
                        "schema": {
                            "$ref": "#/definitions/controller.themeResponse"
                        }
                    }
                }
            }
        },
        "/theme/toggle": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "theme"
                ],
                "summary": "Toggle dark mode",
                "description": "Flip the theme and persist the choice",
                "responses": {
                    "200": {
                        "description": "Theme after the toggle",
                        "schema": {
                            "$ref": "#/definitions/controller.themeResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controller.searchRequest": {
            "type": "object",
            "properties": {
                "query": {
                    "type": "string"
                }
            }
        },
        "controller.themeResponse": {
            "type": "object",
            "properties": {
                "darkMode": {
                    "type": "boolean"
                }
            }
        },
        "entity.Feedback": {
            "type": "object",
            "properties": {
                "contact": {
                    "type": "string"
                },
                "createdDate": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "model.CityInfo": {
            "type": "object",
            "properties": {
                "coord": {
                    "$ref": "#/definitions/model.Coord"
                },
                "country": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "population": {
                    "type": "integer"
                },
                "sunrise": {
                    "type": "integer"
                },
                "sunset": {
                    "type": "integer"
                },
                "timezone": {
                    "type": "integer"
                }
            }
        },
        "model.CitySuggestion": {
            "type": "object",
            "properties": {
                "country": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "lat": {
                    "type": "number"
                },
                "lon": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                }
            }
        },
        "model.Clouds": {
            "type": "object",
            "properties": {
                "all": {
                    "type": "integer"
                }
            }
        },
        "model.Coord": {
            "type": "object",
            "properties": {
                "lat": {
                    "type": "number"
                },
                "lon": {
                    "type": "number"
                }
            }
        },
        "model.CreateFeedbackDTO": {
            "type": "object",
            "required": [
                "message"
            ],
            "properties": {
                "contact": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "model.CurrentWeather": {
            "type": "object",
            "properties": {
                "base": {
                    "type": "string"
                },
                "clouds": {
                    "$ref": "#/definitions/model.Clouds"
                },
                "cod": {
                    "type": "integer"
                },
                "coord": {
                    "$ref": "#/definitions/model.Coord"
                },
                "dt": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "main": {
                    "$ref": "#/definitions/model.MainMetrics"
                },
                "name": {
                    "type": "string"
                },
                "sys": {
                    "$ref": "#/definitions/model.Sys"
                },
                "timezone": {
                    "type": "integer"
                },
                "visibility": {
                    "type": "integer"
                },
                "weather": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.WeatherCondition"
                    }
                },
                "wind": {
                    "$ref": "#/definitions/model.Wind"
                }
            }
        },
        "model.Favorite": {
            "type": "object",
            "properties": {
                "addedAt": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "lat": {
                    "type": "number"
                },
                "lon": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "temp": {
                    "type": "integer"
                },
                "weather": {
                    "$ref": "#/definitions/model.WeatherCondition"
                }
            }
        },
        "model.Forecast": {
            "type": "object",
            "properties": {
                "city": {
                    "$ref": "#/definitions/model.CityInfo"
                },
                "cnt": {
                    "type": "integer"
                },
                "cod": {
                    "type": "string"
                },
                "list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.ForecastEntry"
                    }
                },
                "message": {
                    "type": "number"
                }
            }
        },
        "model.ForecastEntry": {
            "type": "object",
            "properties": {
                "dt": {
                    "type": "integer"
                },
                "dt_txt": {
                    "type": "string"
                },
                "main": {
                    "$ref": "#/definitions/model.MainMetrics"
                },
                "pop": {
                    "type": "number"
                },
                "visibility": {
                    "type": "integer"
                },
                "weather": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.WeatherCondition"
                    }
                },
                "wind": {
                    "$ref": "#/definitions/model.Wind"
                }
            }
        },
        "model.KeyUsage": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "sizeFormatted": {
                    "type": "string"
                }
            }
        },
        "model.LastLocation": {
            "type": "object",
            "properties": {
                "coord": {
                    "$ref": "#/definitions/model.Coord"
                },
                "timestamp": {
                    "type": "integer"
                }
            }
        },
        "model.MainMetrics": {
            "type": "object",
            "properties": {
                "feels_like": {
                    "type": "number"
                },
                "humidity": {
                    "type": "number"
                },
                "pressure": {
                    "type": "number"
                },
                "temp": {
                    "type": "number"
                },
                "temp_max": {
                    "type": "number"
                },
                "temp_min": {
                    "type": "number"
                }
            }
        },
        "model.PageMeta": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "path": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "model.ResolvedLocation": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "coord": {
                    "$ref": "#/definitions/model.Coord"
                },
                "country": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                }
            }
        },
        "model.SessionSnapshot": {
            "type": "object",
            "properties": {
                "currentWeather": {
                    "$ref": "#/definitions/model.CurrentWeather"
                },
                "error": {
                    "type": "string"
                },
                "favorites": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Favorite"
                    }
                },
                "forecast": {
                    "$ref": "#/definitions/model.Forecast"
                },
                "isGettingLocation": {
                    "type": "boolean"
                },
                "isLoading": {
                    "type": "boolean"
                },
                "isSearching": {
                    "type": "boolean"
                },
                "searchQuery": {
                    "type": "string"
                },
                "searchSuggestions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.CitySuggestion"
                    }
                }
            }
        },
        "model.Sys": {
            "type": "object",
            "properties": {
                "country": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "sunrise": {
                    "type": "integer"
                },
                "sunset": {
                    "type": "integer"
                },
                "type": {
                    "type": "integer"
                }
            }
        },
        "model.UsageReport": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/model.KeyUsage"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "totalFormatted": {
                    "type": "string"
                }
            }
        },
        "model.WeatherCondition": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "main": {
                    "type": "string"
                }
            }
        },
        "model.Wind": {
            "type": "object",
            "properties": {
                "deg": {
                    "type": "number"
                },
                "speed": {
                    "type": "number"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/haru",
	Schemes:          []string{},
	Title:            "HARU WEATHER API",
	Description:      "Weather lookup service with location resolution, favorites and autocomplete",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
