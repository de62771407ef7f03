// Package docs holds the OpenAPI description served at /swagger in dev mode.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}}}},
            "post": {
                "tags": ["users"], "summary": "Create user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/User"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "400": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}
            }
        },
        "/users/{id}": {
            "parameters": [{"$ref": "#/parameters/id"}],
            "get": {"tags": ["users"], "summary": "Get user", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "404": {"$ref": "#/responses/Error"}}},
            "patch": {
                "tags": ["users"], "summary": "Partially update user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/User"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "404": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}
            },
            "delete": {"tags": ["users"], "summary": "Delete user", "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/items": {
            "get": {"tags": ["items"], "summary": "List the sharer's items", "parameters": [{"$ref": "#/parameters/sharer"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Item"}}}}},
            "post": {
                "tags": ["items"], "summary": "Create item",
                "parameters": [{"$ref": "#/parameters/sharer"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Item"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Item"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}
            }
        },
        "/items/search": {
            "get": {"tags": ["items"], "summary": "Search available items", "parameters": [{"in": "query", "name": "text", "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Item"}}}}}
        },
        "/items/{id}": {
            "parameters": [{"$ref": "#/parameters/id"}],
            "get": {"tags": ["items"], "summary": "Get item (bookings shown to the owner)", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Item"}}, "404": {"$ref": "#/responses/Error"}}},
            "patch": {
                "tags": ["items"], "summary": "Partially update item",
                "parameters": [{"$ref": "#/parameters/sharer"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Item"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Item"}}, "404": {"$ref": "#/responses/Error"}}
            },
            "delete": {"tags": ["items"], "summary": "Delete item", "parameters": [{"$ref": "#/parameters/sharer"}], "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/Error"}}}
        },
        "/items/{id}/comment": {
            "post": {
                "tags": ["items"], "summary": "Comment on a previously booked item",
                "parameters": [{"$ref": "#/parameters/id"}, {"$ref": "#/parameters/sharer"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Comment"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Comment"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}
            }
        },
        "/bookings": {
            "get": {"tags": ["bookings"], "summary": "List the sharer's bookings", "parameters": [{"$ref": "#/parameters/sharer"}, {"$ref": "#/parameters/state"}, {"$ref": "#/parameters/from"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Booking"}}}, "403": {"$ref": "#/responses/Error"}}},
            "post": {
                "tags": ["bookings"], "summary": "Create booking",
                "parameters": [{"$ref": "#/parameters/sharer"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/BookingCreate"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Booking"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}
            }
        },
        "/bookings/owner": {
            "get": {"tags": ["bookings"], "summary": "List bookings of the sharer's items", "parameters": [{"$ref": "#/parameters/sharer"}, {"$ref": "#/parameters/state"}, {"$ref": "#/parameters/from"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Booking"}}}, "403": {"$ref": "#/responses/Error"}}}
        },
        "/bookings/{id}": {
            "parameters": [{"$ref": "#/parameters/id"}, {"$ref": "#/parameters/sharer"}],
            "get": {"tags": ["bookings"], "summary": "Get booking", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Booking"}}, "404": {"$ref": "#/responses/Error"}}},
            "patch": {
                "tags": ["bookings"], "summary": "Approve or reject booking",
                "parameters": [{"in": "query", "name": "approved", "type": "boolean", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Booking"}}, "400": {"$ref": "#/responses/Error"}, "403": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}
            }
        },
        "/requests": {
            "get": {"tags": ["requests"], "summary": "List own item requests", "parameters": [{"$ref": "#/parameters/sharer"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ItemRequest"}}}}},
            "post": {
                "tags": ["requests"], "summary": "Create item request",
                "parameters": [{"$ref": "#/parameters/sharer"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ItemRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemRequest"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}}
            }
        },
        "/requests/all": {
            "get": {"tags": ["requests"], "summary": "List other users' item requests", "parameters": [{"$ref": "#/parameters/sharer"}, {"$ref": "#/parameters/from"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ItemRequest"}}}}}
        },
        "/requests/{id}": {
            "get": {"tags": ["requests"], "summary": "Get item request", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemRequest"}}, "404": {"$ref": "#/responses/Error"}}}
        }
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "type": "integer", "required": true},
        "sharer": {"in": "header", "name": "X-Sharer-User-Id", "type": "integer", "required": true},
        "state": {"in": "query", "name": "state", "type": "string", "enum": ["ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"]},
        "from": {"in": "query", "name": "from", "type": "integer", "minimum": 0},
        "size": {"in": "query", "name": "size", "type": "integer", "minimum": 1}
    },
    "responses": {
        "Error": {"description": "Error", "schema": {"$ref": "#/definitions/Error"}}
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"error": {"type": "string"}, "description": {"type": "string"}}},
        "User": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}}},
        "BookingShort": {"type": "object", "properties": {"id": {"type": "integer"}, "bookerId": {"type": "integer"}, "start": {"type": "string"}, "end": {"type": "string"}}},
        "Comment": {"type": "object", "properties": {"id": {"type": "integer"}, "text": {"type": "string"}, "authorName": {"type": "string"}, "created": {"type": "string"}}},
        "Item": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"}, "available": {"type": "boolean"},
            "ownerId": {"type": "integer"}, "requestId": {"type": "integer"},
            "lastBooking": {"$ref": "#/definitions/BookingShort"}, "nextBooking": {"$ref": "#/definitions/BookingShort"},
            "comments": {"type": "array", "items": {"$ref": "#/definitions/Comment"}}
        }},
        "BookingCreate": {"type": "object", "properties": {"itemId": {"type": "integer"}, "start": {"type": "string", "example": "2024-12-12T12:12:12"}, "end": {"type": "string", "example": "2024-12-13T13:13:13"}}},
        "Booking": {"type": "object", "properties": {
            "id": {"type": "integer"}, "start": {"type": "string"}, "end": {"type": "string"},
            "status": {"type": "string", "enum": ["WAITING", "APPROVED", "REJECTED"]},
            "booker": {"type": "object", "properties": {"id": {"type": "integer"}}},
            "item": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}}
        }},
        "LinkedItem": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "ownerId": {"type": "integer"}}},
        "ItemRequest": {"type": "object", "properties": {
            "id": {"type": "integer"}, "description": {"type": "string"}, "requestorId": {"type": "integer"}, "created": {"type": "string"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/LinkedItem"}}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ShareIt API",
	Description:      "Item lending marketplace. Identify the acting user with the X-Sharer-User-Id header.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
