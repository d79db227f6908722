package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Errors 字段级校验错误，与上游 {"errors":{field:[msg]}} 契约一致
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// Add 追加一条字段错误
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Selected 外键/枚举无效的标准错误
func Selected(field string) Errors {
	return Errors{field: {fmt.Sprintf("The selected %s is invalid.", field)}}
}

// Setup 让 binding 校验错误以 json tag 报字段名；进程启动时调用一次
func Setup() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Translate 把绑定错误翻译成字段错误表；非字段级错误返回 ok=false
func Translate(err error) (Errors, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := Errors{}
		for _, fe := range verrs {
			// 每字段只报第一条
			if _, seen := out[fe.Field()]; seen {
				continue
			}
			out.Add(fe.Field(), messageFor(fe))
		}
		return out, true
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		field := ute.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return Errors{field: {typeMessage(field, ute.Type)}}, true
	}

	return nil, false
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "numeric":
		return fmt.Sprintf("The %s field must be a number.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

func typeMessage(field string, t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("The %s field must be an integer.", field)
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("The %s field must be a number.", field)
	case reflect.Bool:
		return fmt.Sprintf("The %s field must be true or false.", field)
	case reflect.String:
		return fmt.Sprintf("The %s field must be a string.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
