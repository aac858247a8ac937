// Package docs registers the OpenAPI description served under /swagger/.
// Keep it in step with the handler annotations; `swag init -g cmd/app/main.go`
// regenerates it.
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
        "/spins": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spin"],
                "summary": "Request a spin",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateSpinRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/spins/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["spin"],
                "summary": "Get spin request",
                "parameters": [{"$ref": "#/parameters/requestID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SpinRequestResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/spins/{id}/fulfilled": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["spin"],
                "summary": "Is spin fulfilled",
                "parameters": [{"$ref": "#/parameters/requestID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FulfilledResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/spins/{id}/result": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["spin"],
                "summary": "Get spin result",
                "parameters": [{"$ref": "#/parameters/requestID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SpinResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Not fulfilled yet", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/spins/{id}/player": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["spin"],
                "summary": "Get spin player",
                "parameters": [{"$ref": "#/parameters/requestID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlayerResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/spins/{id}/payout/retry": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["spin"],
                "summary": "Retry payout",
                "parameters": [{"$ref": "#/parameters/requestID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SpinRequestResponse"}},
                    "202": {"description": "Payout still failing", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "No payout due", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/spin/config": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["spin"],
                "summary": "Get spin configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SpinConfigResponse"}}
                }
            }
        },
        "/stats/{player}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Get player stats",
                "parameters": [{"name": "player", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlayerStatsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/oracle/callback": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["oracle"],
                "summary": "Oracle randomness callback",
                "parameters": [
                    {"name": "X-Oracle-ID", "in": "header", "required": true, "type": "string"},
                    {"name": "X-Oracle-Signature", "in": "header", "required": true, "type": "string", "description": "HMAC over request_id, random_value and oracle_id (the X-Oracle-ID value)"},
                    {"name": "request_id", "in": "formData", "required": true, "type": "string"},
                    {"name": "random_value", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Already fulfilled", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/ledger/balance/{account}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Get token balance",
                "parameters": [{"name": "account", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BalanceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Ledger unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/ledger/allowance/{owner}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Get spin pool allowance",
                "parameters": [{"name": "owner", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AllowanceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Ledger unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/admin/ledger/mint": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Mint tokens (in-memory ledger only)",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AdminMintRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BalanceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/admin/ledger/approve": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Approve the spin pool (in-memory ledger only)",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AdminApproveRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AllowanceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "parameters": {
        "requestID": {"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}
    },
    "definitions": {
        "handler.BalanceResponse": {
            "type": "object",
            "properties": {
                "account": {"type": "string"},
                "amount": {"type": "integer"},
                "amount_display": {"type": "string"}
            }
        },
        "handler.AllowanceResponse": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "spender": {"type": "string"},
                "amount": {"type": "integer"},
                "amount_display": {"type": "string"}
            }
        },
        "handler.AdminMintRequest": {
            "type": "object",
            "required": ["account", "amount"],
            "properties": {"account": {"type": "string"}, "amount": {"type": "string", "example": "12.5"}}
        },
        "handler.AdminApproveRequest": {
            "type": "object",
            "required": ["owner", "amount"],
            "properties": {"owner": {"type": "string"}, "amount": {"type": "string", "example": "10"}}
        },
        "handler.CreateSpinRequest": {
            "type": "object",
            "required": ["player"],
            "properties": {"player": {"type": "string"}}
        },
        "handler.SpinRequestResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "format": "uuid"},
                "player": {"type": "string"},
                "state": {"type": "string", "enum": ["Pending", "Fulfilled"]},
                "cost": {"type": "integer"},
                "oracle_handle": {"type": "string"},
                "result": {"$ref": "#/definitions/domain.SpinResult"},
                "random_value": {"type": "string"},
                "payout_status": {"type": "string", "enum": ["none", "processing", "paid", "failed"]},
                "created_at": {"type": "string", "format": "date-time"},
                "fulfilled_at": {"type": "string", "format": "date-time"},
                "paid_at": {"type": "string", "format": "date-time"}
            }
        },
        "handler.DataResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/handler.SpinRequestResponse"}
            }
        },
        "handler.FulfilledResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "format": "uuid"},
                "fulfilled": {"type": "boolean"}
            }
        },
        "handler.PlayerResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "format": "uuid"},
                "player": {"type": "string"}
            }
        },
        "handler.SpinConfigResponse": {
            "type": "object",
            "properties": {
                "cost": {"type": "integer"},
                "win_threshold": {"type": "integer"},
                "modulus": {"type": "integer"},
                "payout_multiplier": {"type": "integer"},
                "cost_display": {"type": "string"},
                "payout_display": {"type": "string"},
                "win_chance": {"type": "string"},
                "expected_return": {"type": "number"}
            }
        },
        "handler.PlayerStatsResponse": {
            "type": "object",
            "properties": {
                "player": {"type": "string"},
                "spins": {"type": "integer"},
                "wins": {"type": "integer"},
                "losses": {"type": "integer"},
                "payouts": {"type": "integer"},
                "wagered": {"type": "integer"},
                "updated_at": {"type": "string", "format": "date-time"},
                "win_percentage": {"type": "integer"},
                "profit_loss": {"type": "integer"},
                "profit_loss_display": {"type": "string"}
            }
        },
        "domain.SpinResult": {
            "type": "object",
            "properties": {
                "won": {"type": "boolean"},
                "payout_amount": {"type": "integer"}
            }
        },
        "handler.SuccessResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Brandish Spin API",
	Description:      "Pay-to-play spin game settled by a randomness oracle.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
