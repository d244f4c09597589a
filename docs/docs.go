// Package docs registers the OpenAPI document served under /swagger.
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
        "/dimensions": {
            "get": {
                "summary": "List the five dimensions and the Likert labels",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dimensions/normalize": {
            "post": {
                "summary": "Map dimension names to canonical names",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid body"}}
            }
        },
        "/scores": {
            "post": {
                "summary": "Score Likert responses per dimension",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Response outside 1..5"}}
            }
        },
        "/reports": {
            "post": {
                "summary": "Build a full diagnostic report from responses",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Fewer than two dimensions or invalid responses"}}
            }
        },
        "/reports/from-scores": {
            "post": {
                "summary": "Build a report from stored dimension scores",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid scores"}}
            }
        },
        "/recommendations": {
            "post": {
                "summary": "Recommendations for canonical dimension names",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/disc/scores": {
            "post": {
                "summary": "Score the DISC instrument and derive the profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Response outside 1..5"}}
            }
        },
        "/assessments": {
            "get": {
                "summary": "List stored assessments",
                "parameters": [
                    {"type": "string", "name": "facilitator_id", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Score, persist and report an assessment",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid request"}}
            }
        },
        "/assessments/{id}": {
            "get": {
                "summary": "Load an assessment and rebuild its report",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "summary": "Delete an assessment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/privacy/retention": {
            "get": {
                "summary": "Describe the data retention policy",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/privacy/erase": {
            "post": {
                "summary": "Delete every stored assessment of a participant",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Missing participant name"}}
            }
        }
    }
}`

// SwaggerInfo holds the exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "IES Diagnostics API",
	Description:      "Scoring and interpretation of the five-dimension emotional and spiritual intelligence diagnostic and the DISC profile.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
