package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/lennonhrmn/AWI-Mobile/internal/apierror"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/middleware"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalide : "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			c.JSON(http.StatusBadRequest, apierror.New("Requête invalide"))
			return false
		}
		fields := make(map[string]string)
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

var (
	notFoundErrors = []error{
		service.ErrGameNotFound,
		service.ErrSellerNotFound,
		service.ErrSellerUnknown,
		service.ErrBuyerNotFound,
	}
	invalidInputErrors = []error{
		service.ErrNamesRequired,
		service.ErrInvalidEmail,
		service.ErrInvalidPhone,
		service.ErrPercentageRange,
		service.ErrSellerHasNoEmail,
	}
	preconditionErrors = []error{
		service.ErrNoSellerSelected,
		service.ErrNoActiveSession,
		service.ErrUnknownScope,
	}
	unavailableErrors = []error{
		infra.ErrMailDisabled,
		infra.ErrBreakerOpen,
	}
)

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// statusFor maps a view-model error to the console response status. Any
// backend failure is a bad gateway; the operator message is kept.
func statusFor(err error) int {
	switch {
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, invalidInputErrors):
		return http.StatusUnprocessableEntity
	case isAny(err, preconditionErrors):
		return http.StatusBadRequest
	case isAny(err, unavailableErrors):
		return http.StatusServiceUnavailable
	}
	var de *infra.DepotError
	if errors.As(err, &de) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError writes err with the apierror envelope. Unknown errors are
// logged and replaced by a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		return
	}
	if status == http.StatusBadGateway {
		log.Warn().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Int("backend_status", infra.StatusOf(err)).
			Err(err).
			Msg("backend call failed")
	}
	c.JSON(status, apierror.New(err.Error()))
}

// screens gives handlers access to the caller's workspace.
type screens struct{ store *service.WorkspaceStore }

func (s screens) workspace(c *gin.Context) *service.Workspace {
	id, _ := middleware.GetClaims(c).Workspace()
	return s.store.Get(id)
}
