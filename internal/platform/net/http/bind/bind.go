// Package bind provides JSON bind and validation helpers for handlers.
// Messages are rendered in French and name fields by their json tag
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "convertis/internal/platform/errors"
	"convertis/internal/platform/logger"

	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
)

// FieldLevel aliases validator.FieldLevel for custom tag funcs
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Init builds the validator singleton with French messages and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		frLoc := fr.New()
		uni := ut.New(frLoc, frLoc)
		trans, _ := uni.GetTranslator("fr")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonTagName)

		_ = fr_translations.RegisterDefaultTranslations(v, trans)

		register(v, trans, "required", "Le champ {0} est requis", false)
		register(v, trans, "max", "Le champ {0} ne doit pas dépasser {1} caractères", true)
		register(v, trans, "min", "Le champ {0} doit contenir au moins {1} caractères", true)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// registerValidation registers a custom tag with its French message ({0} is the field)
func registerValidation(tag, message string, fn func(FieldLevel) bool) error {
	s := Get()
	if err := s.Validator.RegisterValidation(tag, validator.Func(fn)); err != nil {
		return err
	}
	register(s.Validator, s.Translator, tag, message, false)
	return nil
}

// Struct validates v and maps the first failure to a validation error
func Struct(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation impossible")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.Validationf(field, "%s", msg)
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default false: extra keys are ignored
	AllowEmptyBody  bool  // default false
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors.
// A value of the wrong JSON type is a validation error on that field
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("failed to close request body")
		}
	}()

	var reader io.Reader = r.Body
	if !o.AllowEmptyBody {
		buf := make([]byte, 1)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			return zero, perr.JSONErrf("Corps de requête vide")
		}
		reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, decodeError(err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("JSON invalide : données en trop")
	}
	if err := Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// decodeError turns encoding/json failures into client-facing errors
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if i := strings.LastIndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		return perr.Validationf(field, "Le champ %s doit être de type %s", field, typeName(typeErr.Type))
	}
	if strings.HasPrefix(err.Error(), "json: unknown field ") {
		f := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return perr.Validationf(f, "Le champ %s n'est pas autorisé", f)
	}
	return perr.Wrap(err, perr.ErrorCodeJSON, "JSON invalide")
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "inconnu"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "texte"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "nombre"
	case reflect.Bool:
		return "booléen"
	case reflect.Slice, reflect.Array:
		return "liste"
	default:
		return "objet"
	}
}

// ValidationFieldAndMessage returns the failing field and its translated message.
// A missing required field wins over other failures; otherwise struct order decides
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		for _, e := range verrs {
			if e.Tag() == "required" {
				fe = e
				break
			}
		}
		return fe.Field(), fe.Translate(Get().Translator)
	}
	return "", err.Error()
}

// jsonTagName names fields by their json tag so messages match the wire
func jsonTagName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// register overrides the message for tag; withParam passes the tag param as {1}
func register(v *validator.Validate, trans ut.Translator, tag, text string, withParam bool) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			var msg string
			if withParam {
				msg, _ = t.T(tag, fe.Field(), fe.Param())
			} else {
				msg, _ = t.T(tag, fe.Field())
			}
			return msg
		},
	)
}
