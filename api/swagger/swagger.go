package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduTrackr API",
        "description": "Role-based education portal: staged login, view routing, AI study tools and staff administration",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Staged login flow and sessions"},
        {"name": "Views", "description": "Session view navigation"},
        {"name": "Dashboard", "description": "Role-specific dashboards"},
        {"name": "Study", "description": "AI planner, flashcards, quizzes and tutor"},
        {"name": "Schedule", "description": "Timetable, assignments and focus timer"},
        {"name": "Messages", "description": "Chat threads"},
        {"name": "Partners", "description": "Study partner matching"},
        {"name": "Gamification", "description": "Leaderboard, badges and XP"},
        {"name": "Wellness", "description": "Affirmations, breathing and mood check-ins"},
        {"name": "College", "description": "Staff administration"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/flows": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Open a login flow",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/flows/{id}": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Inspect a login flow",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/auth/flows/{id}/role": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Choose the actor role",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Wrong step or busy flow"}
                }
            }
        },
        "/auth/flows/{id}/details": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Submit the details form",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid staff credentials"},
                    "409": {"description": "Wrong step or busy flow"}
                }
            }
        },
        "/auth/flows/{id}/code": {
            "patch": {
                "tags": ["Authentication"],
                "summary": "Update one verification code position",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/flows/{id}/verify": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Verify the code and finish the login",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "412": {"description": "Incomplete code"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current identity",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "End the current session",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/views/navigate": {
            "post": {
                "tags": ["Views"],
                "summary": "Navigate the session to a view",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/views/current": {
            "get": {
                "tags": ["Views"],
                "summary": "Resolve the session's current view",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/views/navigation": {
            "get": {
                "tags": ["Views"],
                "summary": "Navigation set for the session role",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/views/{view}/title": {
            "get": {
                "tags": ["Views"],
                "summary": "Header title for a view",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "view", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/views/{view}/dispatch": {
            "get": {
                "tags": ["Views"],
                "summary": "Resolve what a view renders for the session role",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "view", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard for the session role",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/study/plan": {
            "post": {
                "tags": ["Study"],
                "summary": "Generate a study plan",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/study/flashcards": {
            "post": {
                "tags": ["Study"],
                "summary": "Generate flashcards",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/study/quiz": {
            "post": {
                "tags": ["Study"],
                "summary": "Generate a quiz",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/study/tutor": {
            "post": {
                "tags": ["Study"],
                "summary": "Ask the AI tutor",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/college/attendance": {
            "post": {
                "tags": ["College"],
                "summary": "Submit a day's attendance",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Requires the COLLEGE role"}
                }
            }
        },
        "/college/marks": {
            "post": {
                "tags": ["College"],
                "summary": "Publish exam marks",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Requires the COLLEGE role"}
                }
            }
        },
        "/college/exports/marks": {
            "get": {
                "tags": ["College"],
                "summary": "Download published marks as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
