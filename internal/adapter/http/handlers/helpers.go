package handlers

import (
	"errors"
	"net/http"
	"reflect"

	"rebobinagem/internal/adapter/http/middleware"
	"rebobinagem/internal/documents"
	"rebobinagem/internal/domain/budgeting"
	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase"
	"rebobinagem/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// decimal.Decimal validates as a number so tags like gt=0 work on money fields.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// bindAndValidate binds the JSON body and runs the validate tags. It writes the error
// response itself and reports false when the caller must stop.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, errInvalidRequest)
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace()+":"+fe.Tag())
			}
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid fields",
			"fields":  fields,
		})
		return false
	}
	return true
}

// currentActor returns the authenticated actor or writes a 401.
func currentActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return entities.Actor{}, false
	}
	return actor, true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDomainError translates budget, catalog and document errors into HTTP envelopes.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidPartID),
		errors.Is(err, usecase.ErrInvalidStatusName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, budgeting.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, budgeting.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Unit price must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, budgeting.ErrMissingPart):
		return pkg.NewDomainErrorSimple("MISSING_PART", "Part reference is required", http.StatusUnprocessableEntity)
	case errors.Is(err, budgeting.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount percent cannot be negative", http.StatusUnprocessableEntity)
	case errors.Is(err, budgeting.ErrDiscountExceedsCap):
		return pkg.NewDomainErrorSimple("DISCOUNT_EXCEEDS_CAP", "Discount percent exceeds the limit for your role", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidClientName), errors.Is(err, usecase.ErrInvalidPartName), errors.Is(err, usecase.ErrInvalidPartPrice):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, documents.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Client has no usable phone number", http.StatusUnprocessableEntity)
	case errors.Is(err, budgeting.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this role", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, budgeting.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Budget item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, budgeting.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, budgeting.ErrEmptyBudgetCannotAdvance):
		return pkg.NewDomainErrorSimple("EMPTY_BUDGET", "Budget without items cannot leave pre_quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrClientHasBudgets):
		return pkg.NewDomainErrorSimple("CLIENT_HAS_BUDGETS", "Client has budgets", http.StatusConflict)
	case budgeting.IsStoreError(err):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
