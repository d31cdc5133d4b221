package router

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

func registerSwaggerRoutes(router *mux.Router) {
	router.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	router.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	router.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>BankNet Simulation API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "BankNet Simulation API",
    "description": "Educational SWIFT-style transfer simulation. Not connected to any real banking network.",
    "version": "1.0.0"
  },
  "paths": {
    "/api/auth/login": {
      "post": {
        "summary": "Exchange credentials for a bearer token",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["username", "password"],
                "properties": {
                  "username": {"type": "string", "example": "kompx3"},
                  "password": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Login successful"},
          "400": {"description": "Validation error"},
          "401": {"description": "Invalid credentials"}
        }
      }
    },
    "/api/users": {
      "post": {
        "summary": "Create a user (admin only)",
        "security": [{"BearerAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["username", "password", "role"],
                "properties": {
                  "username": {"type": "string"},
                  "password": {"type": "string", "minLength": 8},
                  "role": {"type": "string", "enum": ["admin", "officer", "customer"]},
                  "fullName": {"type": "string"},
                  "email": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Validation error"},
          "403": {"description": "Actor is not an admin"}
        }
      }
    },
    "/api/transfers": {
      "post": {
        "summary": "Initiate a transfer",
        "security": [{"BearerAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["senderName", "senderBic", "receiverName", "receiverBic", "amount", "currency"],
                "properties": {
                  "senderName": {"type": "string"},
                  "senderBic": {"type": "string", "example": "DEUTDEFFXXX"},
                  "receiverName": {"type": "string"},
                  "receiverBic": {"type": "string", "example": "CHASUS33XXX"},
                  "amount": {"type": "string", "example": "1000.00"},
                  "currency": {"type": "string", "example": "EUR"},
                  "transferType": {"type": "string", "enum": ["SWIFT-MT", "SWIFT-MX"]},
                  "purpose": {"type": "string"},
                  "reference": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Transfer created"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"}
        }
      },
      "get": {
        "summary": "List transfers with optional filters",
        "security": [{"BearerAuth": []}],
        "parameters": [
          {"name": "status", "in": "query", "schema": {"type": "string", "enum": ["all", "pending", "processing", "completed", "rejected", "held"]}},
          {"name": "type", "in": "query", "schema": {"type": "string", "enum": ["all", "SWIFT-MT", "SWIFT-MX"]}},
          {"name": "search", "in": "query", "schema": {"type": "string"}},
          {"name": "minAmount", "in": "query", "schema": {"type": "string"}},
          {"name": "maxAmount", "in": "query", "schema": {"type": "string"}},
          {"name": "from", "in": "query", "schema": {"type": "string", "format": "date"}},
          {"name": "to", "in": "query", "schema": {"type": "string", "format": "date"}},
          {"name": "limit", "in": "query", "schema": {"type": "integer"}}
        ],
        "responses": {
          "200": {"description": "Transfers fetched"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/api/transfers/stats": {
      "get": {
        "summary": "Aggregate transfer statistics",
        "security": [{"BearerAuth": []}],
        "responses": {
          "200": {"description": "Stats fetched"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/api/transfers/{id}": {
      "get": {
        "summary": "Get a transfer with full stage timeline",
        "security": [{"BearerAuth": []}],
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Transfer fetched"},
          "404": {"description": "Transfer not found"}
        }
      }
    },
    "/api/transfers/action": {
      "post": {
        "summary": "Approve, hold or reject a transfer",
        "security": [{"BearerAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["transferId", "action"],
                "properties": {
                  "transferId": {"type": "string"},
                  "action": {"type": "string", "enum": ["approve", "hold", "reject"]},
                  "notes": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Action applied"},
          "400": {"description": "Validation error"},
          "403": {"description": "Actor may not mutate transfers"},
          "404": {"description": "Transfer not found"},
          "409": {"description": "Action not valid for current status"}
        }
      }
    },
    "/api/transfers/bulk-action": {
      "post": {
        "summary": "Apply one action to many transfers",
        "security": [{"BearerAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["transferIds", "action"],
                "properties": {
                  "transferIds": {"type": "array", "items": {"type": "string"}},
                  "action": {"type": "string", "enum": ["approve", "hold", "reject"]},
                  "notes": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Per-transfer results"},
          "400": {"description": "Validation error"},
          "403": {"description": "Actor may not mutate transfers"}
        }
      }
    },
    "/api/transfers/advance-stage": {
      "post": {
        "summary": "Advance a transfer to its next stage",
        "security": [{"BearerAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["transferId"],
                "properties": {
                  "transferId": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Stage advanced"},
          "403": {"description": "Actor may not mutate transfers"},
          "404": {"description": "Transfer not found"},
          "409": {"description": "Transfer cannot advance from its current state"}
        }
      }
    },
    "/api/transfers/toggle-auto-progression": {
      "post": {
        "summary": "Enable or disable automatic stage progression for a transfer",
        "security": [{"BearerAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["transferId", "enable"],
                "properties": {
                  "transferId": {"type": "string"},
                  "enable": {"type": "boolean"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Toggle applied"},
          "404": {"description": "Transfer not found"}
        }
      }
    },
    "/api/banks": {
      "get": {
        "summary": "List participant banks",
        "security": [{"BearerAuth": []}],
        "parameters": [
          {"name": "search", "in": "query", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Banks fetched"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/api/rates": {
      "get": {
        "summary": "List simulated exchange rates",
        "security": [{"BearerAuth": []}],
        "parameters": [
          {"name": "base", "in": "query", "schema": {"type": "string", "example": "USD"}},
          {"name": "from", "in": "query", "schema": {"type": "string"}},
          {"name": "to", "in": "query", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Rates fetched"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/api/rates/convert": {
      "post": {
        "summary": "Convert an amount between currencies",
        "security": [{"BearerAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["amount", "fromCurrency", "toCurrency"],
                "properties": {
                  "amount": {"type": "string", "example": "1500.00"},
                  "fromCurrency": {"type": "string", "example": "USD"},
                  "toCurrency": {"type": "string", "example": "EUR"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Conversion computed"},
          "400": {"description": "Validation error"}
        }
      }
    },
    "/api/analytics/risk-score/{id}": {
      "get": {
        "summary": "Heuristic risk score for a transfer",
        "security": [{"BearerAuth": []}],
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Risk score computed"},
          "404": {"description": "Transfer not found"}
        }
      }
    },
    "/api/documents/transfer-receipt/{id}": {
      "get": {
        "summary": "PDF confirmation document for a transfer",
        "security": [{"BearerAuth": []}],
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {
            "description": "PDF document",
            "content": {"application/pdf": {}}
          },
          "404": {"description": "Transfer not found"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BearerAuth": {
        "type": "http",
        "scheme": "bearer",
        "bearerFormat": "JWT"
      }
    }
  }
}`
