package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/bloodlink/bloodlink-api/schema"
	"github.com/bloodlink/bloodlink-api/store"
	"github.com/bloodlink/bloodlink-api/utils"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "too many requests",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: "invalid credentials",
		1103: "role not allowed for this operation",

		1200: "validation failed",

		1300: store.ErrBloodRequestNotFound.Error(),
		1301: store.ErrDonorResponseNotFound.Error(),
		1302: "not authorized to manage this request",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorTooManyRequests            = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken       = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)
	errorRoleNotAllowed     = errorJSON(1103)

	errorBloodRequestNotFound  = errorJSON(1300)
	errorDonorResponseNotFound = errorJSON(1301)
	errorNotRequester          = errorJSON(1302)
)

const errorValidationCode = 1200

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorValidation reports the field that failed validation
func errorValidation(err *schema.ValidationError) ErrorResponse {
	return ErrorResponse{
		Code:    errorValidationCode,
		Message: err.Error(),
		Field:   err.Field,
	}
}

// errorBinding converts a request decoding error into an error object,
// keeping the offending field when the decoder knows it
func errorBinding(err error) ErrorResponse {
	switch e := err.(type) {
	case validator.ValidationErrors:
		if len(e) > 0 {
			return errorValidation(fieldError(e[0]))
		}
	case *json.UnmarshalTypeError:
		return errorValidation(&schema.ValidationError{
			Field:  e.Field,
			Reason: fmt.Sprintf("must be a %s", e.Type.String()),
		})
	case *schema.ValidationError:
		return errorValidation(e)
	}

	resp := errorCannotParseRequest
	resp.Message = fmt.Sprintf("%s: %s", resp.Message, err.Error())
	return resp
}

func fieldError(fe validator.FieldError) *schema.ValidationError {
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "email":
		reason = "must be a valid email"
	case "min":
		reason = fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		reason = fmt.Sprintf("must be one of %v", strings.Fields(fe.Param()))
	default:
		reason = fmt.Sprintf("failed on %s", fe.Tag())
	}

	return &schema.ValidationError{Field: fe.Field(), Reason: reason}
}

// localize translates the message of a well-known error code to the
// language the client accepts
func localize(c *gin.Context, obj ErrorResponse) ErrorResponse {
	lang := c.GetHeader("Accept-Language")
	if lang == "" {
		return obj
	}

	if msg, ok := errorMessageMap[obj.Code]; !ok || msg != obj.Message {
		return obj
	}

	obj.Message = utils.Translate(utils.NewLocalizer(lang), fmt.Sprintf("error_%d", obj.Code), obj.Message)
	return obj
}
