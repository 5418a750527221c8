package utils

import (
	"encoding/json"
	"errors"

	httpError "wasset-admin/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is what every usecase returns to its controller.
type Result struct {
	Data       interface{}
	Pagination *Pagination
	Error      error
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

type apiResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(apiResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func ResponsePaginated(result Result, message string, ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apiResponse{
		Success:    true,
		Data:       result.Data,
		Message:    message,
		Pagination: result.Pagination,
	})
}

// ResponseError maps a usecase error onto the response envelope. Unknown
// errors become a 500 carrying the raw message, matching the propagation
// policy of the store errors.
func ResponseError(err error, ctx *fiber.Ctx) error {
	var commonErr *httpError.CommonError
	if errors.As(err, &commonErr) {
		return ctx.Status(commonErr.Code).JSON(apiResponse{
			Success: false,
			Message: commonErr.Message,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apiResponse{
		Success: false,
		Message: err.Error(),
	})
}

func ConvertString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
