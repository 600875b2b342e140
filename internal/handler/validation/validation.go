package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"sync"

	"meter-reading-api/internal/domain/reading"
	"meter-reading-api/internal/pkg/errs"
	"meter-reading-api/internal/pkg/timeparse"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const TagAnyDateTime = "anydatetime"

// Rules reported by FieldError besides the binding tags themselves.
const (
	RuleRequired = "required"
	RuleEmpty    = "empty"
	RuleType     = "type"
	RuleUnknown  = "unknown"
)

const msgNotAnObject = `"value" must be of type object`

var (
	registerOnce sync.Once
	registerErr  error
	engine       *validator.Validate
)

// FieldError is the first violation found in a request body.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q failed on the %q rule", e.Field, e.Rule)
}

// Register installs the custom binding rules on gin's validator. Safe to call repeatedly.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errs.New("gin binding validator is not go-playground/validator")
			return
		}
		if err := v.RegisterValidation(TagAnyDateTime, isAnyDateTime); err != nil {
			registerErr = errs.Wrap(err, "register anydatetime validation")
			return
		}
		engine = v
	})
	return registerErr
}

// BindJSON decodes the request body as a JSON object and binds it into dst with Bind.
func BindJSON(c *gin.Context, dst any) error {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		return err
	}
	return Bind(body, dst)
}

// Bind fills dst, a pointer to a struct of string fields, from a decoded JSON object.
// Fields are handled one at a time in declaration order: JSON type first, then the
// field's binding rules. Keys dst does not declare are rejected only after every
// declared field passed. The first violation is returned as a *FieldError.
func Bind(body map[string]json.RawMessage, dst any) error {
	if err := Register(); err != nil {
		return err
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return errs.Newf("bind target must be a pointer to a struct, got %T", dst)
	}
	sv := rv.Elem()
	st := sv.Type()

	known := make(map[string]struct{}, st.NumField())
	for i := range st.NumField() {
		sf := st.Field(i)
		name := jsonFieldName(sf)
		if !sf.IsExported() || name == "" {
			continue
		}
		known[name] = struct{}{}

		raw, present := body[name]
		if present {
			if string(raw) == "null" {
				return &FieldError{Field: name, Rule: RuleType, Param: sf.Type.Kind().String()}
			}
			if err := json.Unmarshal(raw, sv.Field(i).Addr().Interface()); err != nil {
				return &FieldError{Field: name, Rule: RuleType, Param: sf.Type.Kind().String()}
			}
		}

		tag := sf.Tag.Get("binding")
		if tag == "" {
			continue
		}
		if err := engine.Var(sv.Field(i).Interface(), tag); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) || len(verrs) == 0 {
				return errs.Wrapf(err, "validate field %q", name)
			}
			rule := verrs[0].Tag()
			if rule == RuleRequired && present {
				rule = RuleEmpty
			}
			return &FieldError{Field: name, Rule: rule, Param: verrs[0].Param()}
		}
	}

	var unknown []string
	for key := range body {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return &FieldError{Field: unknown[0], Rule: RuleUnknown}
	}
	return nil
}

func isAnyDateTime(fl validator.FieldLevel) bool {
	return timeparse.IsValid(fl.Field().String())
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Describe renders the first violation in err as a human readable sentence.
func Describe(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return describeField(fe)
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	if errors.As(err, &typeErr) || errors.As(err, &syntaxErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return msgNotAnObject
	}

	switch {
	case errs.Is(err, reading.ErrInvalidImage):
		return describeField(&FieldError{Field: "image", Rule: "base64"})
	case errs.Is(err, reading.ErrEmptyCustomerCode):
		return describeField(&FieldError{Field: "costumer_code", Rule: RuleEmpty})
	case errs.Is(err, reading.ErrInvalidMeasureDateTime):
		return describeField(&FieldError{Field: "measure_datetime", Rule: TagAnyDateTime})
	case errs.Is(err, reading.ErrInvalidMeasureType):
		return describeField(&FieldError{Field: "measure_type", Rule: "oneof", Param: measureTypesParam()})
	}

	return err.Error()
}

func describeField(fe *FieldError) string {
	switch fe.Rule {
	case RuleRequired:
		return fmt.Sprintf("%q is required", fe.Field)
	case RuleEmpty:
		return fmt.Sprintf("%q is not allowed to be empty", fe.Field)
	case RuleType:
		return fmt.Sprintf("%q must be a %s", fe.Field, fe.Param)
	case RuleUnknown:
		return fmt.Sprintf("%q is not allowed", fe.Field)
	case "base64":
		return fmt.Sprintf("%q must be a valid base64 string", fe.Field)
	case TagAnyDateTime:
		return fmt.Sprintf("%q must be a valid date", fe.Field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", fe.Field, strings.Join(strings.Fields(fe.Param), ", "))
	default:
		return fmt.Sprintf("%q failed on the %q rule", fe.Field, fe.Rule)
	}
}

func measureTypesParam() string {
	types := reading.MeasureTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}
