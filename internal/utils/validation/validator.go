package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MoneyScale and MaxMoney match the NUMERIC(14,2) money columns of every backend.
const MoneyScale = 2

var MaxMoney = decimal.New(1, 12)

var (
	once     sync.Once
	validate *validator.Validate
)

// Get returns the shared validator. decimal.Decimal fields validate as float64 so gt/lt tags work.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		validate.RegisterTagNameFunc(jsonFieldName)
		if err := validate.RegisterValidation("money", validMoney); err != nil {
			panic(fmt.Sprintf("register money validation: %v", err))
		}
	})
	return validate
}

// Struct validates s and converts failures to a validation AppError.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewAppError(http.StatusBadRequest, "invalid request", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return apperrors.NewValidationError(strings.Join(msgs, "; "))
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// validMoney accepts at most MoneyScale decimal places and magnitudes below MaxMoney.
// The custom type func hands validators a float64, so the raw decimal is read from the parent struct.
func validMoney(fl validator.FieldLevel) bool {
	d, ok := rawDecimal(fl)
	if !ok {
		return false
	}
	return d.Equal(d.Round(MoneyScale)) && d.Abs().LessThan(MaxMoney)
}

func rawDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := fl.Parent()
	for parent.Kind() == reflect.Ptr {
		if parent.IsNil() {
			return decimal.Decimal{}, false
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	field := parent.FieldByName(fl.StructFieldName())
	for field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return decimal.Decimal{}, false
		}
		field = field.Elem()
	}
	if !field.IsValid() || !field.CanInterface() {
		return decimal.Decimal{}, false
	}
	d, ok := field.Interface().(decimal.Decimal)
	return d, ok
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
