package order

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"modernshop/internal/domain"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs struct validation plus the money rules validator cannot express
// on decimal fields. Amounts must fit the stored precision so both stores keep
// exactly what was submitted.
func (s *Service) check(in CreateInput) error {
	var fields []domain.FieldError

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{Field: fieldPath(fe), Message: message(fe)})
		}
	}

	if in.TotalAmount == nil {
		fields = append(fields, domain.FieldError{Field: "totalAmount", Message: "is required"})
	} else if err := in.TotalAmount.Check(); err != nil {
		fields = append(fields, domain.FieldError{Field: "totalAmount", Message: err.Error()})
	}
	for i, item := range in.Items {
		if err := item.Price.Check(); err != nil {
			fields = append(fields, domain.FieldError{Field: fmt.Sprintf("items[%d].price", i), Message: err.Error()})
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// fieldPath turns "CreateInput.BillingDetails.email" into "email" and
// "CreateInput.items[0].name" into "items[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.TrimPrefix(ns, "BillingDetails.")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
