package handlers

import (
	"net/http"

	"photoshare-api/internal/graph"
	"photoshare-api/internal/logger"
	"photoshare-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler executes queries and mutations against schema. POST takes a
// JSON body, GET takes query, operationName and variables as query parameters.
func GraphQLHandler(schema *graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphQLRequest
		if c.Method() == fiber.MethodGet {
			req.Query = c.Query("query")
			req.OperationName = c.Query("operationName")
			vars, err := utils.ParseVariables(c.Query("variables"))
			if err != nil {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid variables"})
			}
			req.Variables = vars
		} else if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}

		if req.Query == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "query is required"})
		}

		if c.Method() == fiber.MethodGet && isMutation(req.Query, req.OperationName) {
			c.Set(fiber.HeaderAllow, fiber.MethodPost)
			return c.Status(http.StatusMethodNotAllowed).JSON(fiber.Map{"error": "mutations must use POST"})
		}

		requestID := uuid.New().String()
		ctx := graph.WithRequestID(c.UserContext(), requestID)

		resp := schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
		if len(resp.Errors) > 0 {
			logger.Warn("graphql operation returned errors",
				"request_id", requestID,
				"operation", req.OperationName,
				"errors", len(resp.Errors),
				"first_error", resp.Errors[0].Message)
		} else {
			logger.Debug("graphql operation", "request_id", requestID, "operation", req.OperationName)
		}

		c.Set("X-Request-ID", requestID)
		return c.JSON(resp)
	}
}

// isMutation reports whether the selected operation is a mutation. Without an
// operation name any mutation in the document counts. Documents that do not
// parse are left for the executor to report.
func isMutation(query, operationName string) bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return false
	}
	for _, op := range doc.Operations {
		if operationName != "" && op.Name != operationName {
			continue
		}
		if op.Operation == ast.Mutation {
			return true
		}
	}
	return false
}
