// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/server/main.go -o internal/api/docs`
// after changing handler annotations.
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
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/registerRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "400": {"description": "Duplicate username or email", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Validation error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}},
                    "401": {"description": "Invalid username or password", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/generate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["generation"],
                "summary": "Generate resume, cover letter, missing skills and LinkedIn summary",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/generateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Validation error", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Generation backend error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["history"],
                "summary": "List the 30 most recent generations",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/historyListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/history/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["history"],
                "summary": "Fetch one generation",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/historyDetailResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/jobs/search": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Search job listings",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/jobSearchRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/jobSearchResponse"}},
                    "429": {"description": "A search is already running", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Upstream service error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/documents/extract": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["documents"],
                "summary": "Extract resume text",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [{"in": "formData", "name": "file", "type": "file", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/extractResponse"}},
                    "400": {"description": "Unsupported document", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/documents/export": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["documents"],
                "summary": "Export document",
                "consumes": ["application/json"],
                "produces": ["application/pdf", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/exportRequest"}}],
                "responses": {
                    "200": {"description": "File download"},
                    "422": {"description": "Validation error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Degraded"}}}
        }
    },
    "definitions": {
        "errorResponse": {"type": "object", "properties": {"detail": {"type": "string"}, "code": {"type": "string"}}},
        "registerRequest": {"type": "object", "required": ["username", "email", "password"], "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}},
        "loginRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "tokenResponse": {"type": "object", "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}}},
        "generateRequest": {"type": "object", "required": ["resume", "job"], "properties": {"resume": {"type": "string"}, "job": {"type": "string"}, "model": {"type": "string"}, "job_title": {"type": "string", "maxLength": 200}}},
        "generateResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "ats_resume": {"type": "string"}, "cover_letter": {"type": "string"}, "missing_skills": {"type": "string"}, "linkedin_summary": {"type": "string"}, "job_match_score": {"type": "number"}}},
        "historySummaryResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "job_title": {"type": "string"}, "created_at": {"type": "string", "format": "date-time"}, "job_match_score": {"type": "number"}, "model": {"type": "string"}}},
        "historyListResponse": {"type": "object", "properties": {"history": {"type": "array", "items": {"$ref": "#/definitions/historySummaryResponse"}}}},
        "historyItemResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "user_id": {"type": "integer"}, "job_title": {"type": "string"}, "created_at": {"type": "string", "format": "date-time"}, "resume_input": {"type": "string"}, "job_description": {"type": "string"}, "ats_resume": {"type": "string"}, "cover_letter": {"type": "string"}, "missing_skills": {"type": "string"}, "linkedin_summary": {"type": "string"}, "job_match_score": {"type": "number"}, "model": {"type": "string"}}},
        "historyDetailResponse": {"type": "object", "properties": {"item": {"$ref": "#/definitions/historyItemResponse"}}},
        "jobSearchRequest": {"type": "object", "required": ["keyword"], "properties": {"keyword": {"type": "string"}, "location": {"type": "string"}, "page": {"type": "integer", "minimum": 1, "maximum": 100}}},
        "jobResponse": {"type": "object", "properties": {"job_id": {"type": "string"}, "title": {"type": "string"}, "company": {"type": "string"}, "location": {"type": "string"}, "employment_type": {"type": "string"}, "apply_link": {"type": "string"}, "publisher": {"type": "string"}, "snippet": {"type": "string"}}},
        "jobSearchResponse": {"type": "object", "properties": {"jobs": {"type": "array", "items": {"$ref": "#/definitions/jobResponse"}}}},
        "extractResponse": {"type": "object", "properties": {"text": {"type": "string"}}},
        "exportRequest": {"type": "object", "required": ["text", "format"], "properties": {"text": {"type": "string"}, "format": {"type": "string", "enum": ["pdf", "docx"]}, "filename": {"type": "string", "maxLength": 100}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Resume Assistant API",
	Description:      "Tailors resumes and cover letters to a job description and tracks the results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
