// FILE: internal/http/validator.go
package http

import (
	"fmt"
	"reflect"
	"strings"

	"chesscheck/internal/core"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// validationMiddleware parses and validates the JSON body of mutating routes and
// hands the typed request to the handler through Locals
func validationMiddleware(c *fiber.Ctx) error {
	method := c.Method()
	if method != fiber.MethodPost && method != fiber.MethodPut {
		return c.Next()
	}

	path := c.Path()
	var requestType interface{}

	switch {
	case strings.HasSuffix(path, "/check"):
		requestType = &core.CheckGameRequest{}
	case strings.HasSuffix(path, "/games"):
		requestType = &core.CreateGameRequest{}
	case strings.HasSuffix(path, "/moves"):
		requestType = &core.MoveRequest{}
	case strings.HasSuffix(path, "/undo"):
		requestType = &core.UndoRequest{}
	default:
		return c.Next()
	}

	// An empty body validates as the zero request
	if len(c.Body()) > 0 {
		if err := c.BodyParser(requestType); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid request body",
				Code:    core.ErrInvalidRequest,
				Details: err.Error(),
			})
		}
	}

	if err := validate.Struct(requestType); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "validation failed",
			Code:    core.ErrInvalidRequest,
			Details: describeValidation(err),
		})
	}

	c.Locals("validatedBody", requestType)
	c.Locals("validated", true)

	return c.Next()
}

func describeValidation(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		unit := ""
		if fe.Type().Kind() == reflect.String {
			unit = " characters"
		}
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", fe.Field())
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s%s", fe.Field(), fe.Param(), unit)
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s%s", fe.Field(), fe.Param(), unit)
		default:
			fmt.Fprintf(&details, "%s failed %s validation", fe.Field(), fe.Tag())
		}
	}
	return details.String()
}

// validatedBody fetches the request stored by validationMiddleware
func validatedBody[T any](c *fiber.Ctx) (*T, bool) {
	if validated, ok := c.Locals("validated").(bool); !ok || !validated {
		return nil, false
	}
	req, ok := c.Locals("validatedBody").(*T)
	return req, ok
}

func validationBypass(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
		Error: "validation bypass detected",
		Code:  core.ErrInternalError,
	})
}

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
