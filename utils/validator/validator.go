package validatorx

import (
	stderrors "errors"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	mut.Lock()
	ready := v != nil
	mut.Unlock()
	if !ready {
		Init()
	}
	return v.Struct(s)
}

// Describe flattens validation failures into "Field:tag" pairs for logging,
// e.g. "ItemCode:max". Other errors are returned as their message.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var fieldErrs gpvalidator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Field()+":"+fe.Tag())
	}
	return strings.Join(parts, ",")
}
