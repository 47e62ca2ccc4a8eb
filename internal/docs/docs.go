// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go -o internal/docs`.
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
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "User registered", "schema": {"$ref": "#/definitions/handlers.RegisterResponse"}},
                    "400": {"description": "Invalid input or duplicate email", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "Token issued and session cookie set", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "400": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout user",
                "responses": {"200": {"description": "Cookie cleared", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Get user profile",
                "responses": {
                    "200": {"description": "Profile", "schema": {"$ref": "#/definitions/models.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Update user profile",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.ProfileRequest"}}],
                "responses": {
                    "200": {"description": "Updated profile", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/account": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["account"],
                "summary": "Get account",
                "responses": {
                    "200": {"description": "Account", "schema": {"$ref": "#/definitions/models.Account"}},
                    "503": {"description": "Database not connected", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["account"],
                "summary": "Update account",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateAccountRequest"}}],
                "responses": {
                    "200": {"description": "Updated account", "schema": {"$ref": "#/definitions/models.Account"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "List transactions",
                "responses": {"200": {"description": "Transactions", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Create transaction",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}],
                "responses": {
                    "201": {"description": "Transaction created", "schema": {"$ref": "#/definitions/models.Transaction"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/budget/total-savings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["budget"],
                "summary": "Total savings",
                "responses": {"200": {"description": "Total savings", "schema": {"$ref": "#/definitions/handlers.TotalSavingsResponse"}}}
            }
        },
        "/api/goals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["goals"],
                "summary": "Get goals",
                "responses": {"200": {"description": "Goal", "schema": {"$ref": "#/definitions/models.Goal"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["goals"],
                "summary": "Set goals",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SetGoalsRequest"}}],
                "responses": {
                    "200": {"description": "Goal", "schema": {"$ref": "#/definitions/models.Goal"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/goals/expenditure": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["goals"],
                "summary": "Add expenditure entry",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.GoalEntryRequest"}}],
                "responses": {
                    "200": {"description": "Goal", "schema": {"$ref": "#/definitions/models.Goal"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Goal not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/goals/savings": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["goals"],
                "summary": "Add savings entry",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.GoalEntryRequest"}}],
                "responses": {
                    "200": {"description": "Goal", "schema": {"$ref": "#/definitions/models.Goal"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Goal not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/microinvestment": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["microinvestment"],
                "summary": "List allocations",
                "responses": {"200": {"description": "Allocations", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MicroInvestment"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["microinvestment"],
                "summary": "Create allocation",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateMicroInvestmentRequest"}}],
                "responses": {
                    "200": {"description": "Allocation", "schema": {"$ref": "#/definitions/models.MicroInvestment"}},
                    "400": {"description": "Invalid input or over-allocation", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/microinvestment/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["microinvestment"],
                "summary": "Allocation summary",
                "responses": {"200": {"description": "Summary", "schema": {"$ref": "#/definitions/handlers.AllocationSummaryResponse"}}}
            }
        },
        "/api/microinvestment/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["microinvestment"],
                "summary": "Delete allocation",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true, "description": "Allocation ID"}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "403": {"description": "Allocation owned by another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Allocation not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Store unreachable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}},
        "handlers.ErrorResponse": {"type": "object", "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}},
        "handlers.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string", "minLength": 8}}
        },
        "handlers.RegisterResponse": {"type": "object", "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/models.User"}}},
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.LoginResponse": {"type": "object", "properties": {"message": {"type": "string"}, "token": {"type": "string"}}},
        "handlers.ProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "firstName": {"type": "string"},
                "lastName": {"type": "string"}, "phone": {"type": "string"}, "dob": {"type": "string"},
                "address": {"type": "string"}, "city": {"type": "string"}, "zip": {"type": "string"}
            }
        },
        "handlers.ExpenseRequest": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "value": {"type": "number"}, "category": {"type": "string"}, "date": {"type": "string"}}
        },
        "handlers.UpdateAccountRequest": {
            "type": "object",
            "properties": {"income": {"type": "number"}, "expenses": {"type": "array", "items": {"$ref": "#/definitions/handlers.ExpenseRequest"}}}
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["amount", "roundingType"],
            "properties": {
                "amount": {"type": "number"},
                "date": {"type": "string"},
                "roundingType": {"type": "string", "enum": ["nearest-decimal", "nearest-tens", "nearest-hundreds"]}
            }
        },
        "handlers.TotalSavingsResponse": {"type": "object", "properties": {"totalSavings": {"type": "number"}}},
        "handlers.SetGoalsRequest": {
            "type": "object",
            "required": ["expenditureGoal", "savingsGoal"],
            "properties": {"expenditureGoal": {"type": "number", "minimum": 0}, "savingsGoal": {"type": "number", "minimum": 0}}
        },
        "handlers.GoalEntryRequest": {
            "type": "object",
            "required": ["amount", "category"],
            "properties": {
                "category": {"type": "string", "enum": ["medical", "home", "investment", "emergency", "others"]},
                "amount": {"type": "number"},
                "description": {"type": "string", "maxLength": 500}
            }
        },
        "handlers.CreateMicroInvestmentRequest": {
            "type": "object",
            "required": ["amount", "category"],
            "properties": {"category": {"type": "string", "maxLength": 100}, "amount": {"type": "number"}, "description": {"type": "string", "maxLength": 500}}
        },
        "handlers.AllocationSummaryResponse": {
            "type": "object",
            "properties": {"totalSavings": {"type": "number"}, "allocatedSavings": {"type": "number"}, "unallocatedSavings": {"type": "number"}}
        },
        "handlers.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}, "store": {"type": "string"}}},
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"},
                "firstName": {"type": "string"}, "lastName": {"type": "string"}, "phone": {"type": "string"},
                "dob": {"type": "string"}, "address": {"type": "string"}, "city": {"type": "string"}, "zip": {"type": "string"},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "models.Expense": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "value": {"type": "number"}, "category": {"type": "string"}, "date": {"type": "string"}}
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "userId": {"type": "string"}, "income": {"type": "number"},
                "expense": {"type": "number"}, "balance": {"type": "number"},
                "expenses": {"type": "array", "items": {"$ref": "#/definitions/models.Expense"}}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "userId": {"type": "string"}, "amount": {"type": "number"}, "date": {"type": "string"},
                "roundingType": {"type": "string", "enum": ["nearest-decimal", "nearest-tens", "nearest-hundreds"]}
            }
        },
        "models.GoalEntry": {"type": "object", "properties": {"amount": {"type": "number"}, "description": {"type": "string"}, "date": {"type": "string"}}},
        "models.Goal": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "userId": {"type": "string"},
                "expenditureGoal": {"type": "number"}, "savingsGoal": {"type": "number"},
                "currentExpenditure": {"type": "number"}, "currentSavings": {"type": "number"},
                "expenditureData": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/models.GoalEntry"}}},
                "savingsData": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/models.GoalEntry"}}}
            }
        },
        "models.MicroInvestment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "userId": {"type": "string"}, "category": {"type": "string"},
                "amount": {"type": "number"}, "description": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Roundup API",
	Description:      "Round-up savings backend: accounts, transactions, goals and savings allocations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
