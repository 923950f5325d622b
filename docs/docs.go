// Package docs is generated by swag from the handler annotations.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/api/dashboard": {
            "get": {
                "description": "Returns every poll created by the authenticated user with aggregate stats.",
                "produces": ["application/json"],
                "tags": ["polls"],
                "summary": "Lists the user's polls",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Gets the authenticated user",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/polls": {
            "get": {
                "description": "Returns open polls, newest first, with creator name and vote totals.",
                "produces": ["application/json"],
                "tags": ["polls"],
                "summary": "Lists active polls",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "description": "Creates a poll owned by the authenticated user. Blank options are dropped and at least two must remain.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["polls"],
                "summary": "Creates a poll",
                "parameters": [
                    {"description": "Poll to create", "name": "poll", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createPollRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/polls/{id}": {
            "get": {
                "description": "Returns the poll with its creator, options, vote counts and percentages.",
                "produces": ["application/json"],
                "tags": ["polls"],
                "summary": "Gets a poll",
                "parameters": [{"type": "string", "description": "Poll ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "description": "Deletes a poll created by the authenticated user, including its options and votes.",
                "produces": ["application/json"],
                "tags": ["polls"],
                "summary": "Deletes a poll",
                "parameters": [{"type": "string", "description": "Poll ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/polls/{id}/votes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["votes"],
                "summary": "Votes on a poll",
                "parameters": [
                    {"type": "string", "description": "Poll ID", "name": "id", "in": "path", "required": true},
                    {"description": "Chosen option", "name": "vote", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.voteRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/login": {
            "post": {
                "description": "Checks email and password and sets the auth cookies.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logs a user in",
                "parameters": [
                    {"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.loginRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Revokes the refresh token and clears the auth cookies",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logs the authenticated user out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/refresh": {
            "post": {
                "description": "Creates a new access token cookie based on the refresh token. This cookie is used as authentication for ` + "`" + `/api` + "`" + ` calls.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refreshes the access token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/register": {
            "post": {
                "description": "Creates an email and password account and sets the auth cookies.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registers a user",
                "parameters": [
                    {"description": "Account", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.registerRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/oauth/callback": {
            "post": {
                "description": "Exchanges a Google ID token for auth cookies and redirects to the frontend.",
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Google sign-in callback",
                "parameters": [{"type": "string", "description": "Google ID token", "name": "credential", "in": "formData", "required": true}],
                "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        }
    },
    "definitions": {
        "http.createPollRequest": {
            "type": "object",
            "properties": {
                "allow_multiple_votes": {"type": "boolean"},
                "description": {"type": "string"},
                "expires_at": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "http.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.registerRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.voteRequest": {
            "type": "object",
            "properties": {
                "option_id": {"type": "string"}
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
	Title:            "Votebox API",
	Description:      "Create polls, vote on them and follow the results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
