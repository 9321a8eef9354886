package dto

import (
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain enum validators used in binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	validators := map[string]validator.Func{
		"txntype":    enumValidator(func(s string) bool { return domain.TransactionType(s).IsValid() }),
		"risktier":   enumValidator(func(s string) bool { return domain.RiskTier(s).IsValid() }),
		"loanstatus": enumValidator(func(s string) bool { return domain.LoanStatus(s).IsValid() }),
		"userrole":   enumValidator(func(s string) bool { return domain.UserRole(s).IsValid() }),
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func enumValidator(isValid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return isValid(fl.Field().String())
	}
}
