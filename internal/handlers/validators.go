package handlers

import (
	"log/slog"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	currencySymbolPattern = regexp.MustCompile(`^[A-Za-z]{2,10}$`)
	registerValidatorsOnce sync.Once
)

// validateCurrencySymbol checks the shape of a symbol only. Whether the symbol is
// in the active rate table is decided at conversion time.
func validateCurrencySymbol(fl validator.FieldLevel) bool {
	return currencySymbolPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// registerValidators adds the custom binding tags to gin's validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator, custom tags unavailable")
			return
		}
		// Report form/json names rather than Go field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"form", "json"} {
				name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return ""
		})
		if err := v.RegisterValidation("currency", validateCurrencySymbol); err != nil {
			slog.Error("Failed to register currency validator", slog.String("error", err.Error()))
		}
	})
}
