package validation

import (
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/mercata/shop-backend/internal/httperr"
)

// BindAndValidate binds JSON body into `out` and runs validation.
// If either step fails, it writes the 400 error body and returns an error for
// the handler to short-circuit.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		httperr.Respond(c, httperr.Validation("invalid request body"))
		return err
	}

	if err := v.Struct(out); err != nil {
		httperr.Respond(c, httperr.Validation(FieldErrorsMessage(err)))
		return err
	}
	return nil
}
