package forms

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/P3chys/catalogo-disciplinas/internal/apperrors"
	"github.com/P3chys/catalogo-disciplinas/internal/models"
	"github.com/P3chys/catalogo-disciplinas/internal/utils"
)

const (
	MsgRequired        = "Este campo é obrigatório."
	MsgInvalidSemester = "Escolha um semestre válido."
	MsgTooLong         = "Use no máximo 64 caracteres."
	MsgInvalidText     = "O texto contém caracteres inválidos."
	MsgInvalidCSRF     = "Token CSRF inválido ou ausente."
	MsgMalformed       = "Não foi possível ler o formulário enviado."

	// FormKey collects errors that do not belong to a single field.
	FormKey = "form"
)

// DisciplineForm is the discipline submission. Values are kept exactly as
// submitted.
type DisciplineForm struct {
	Disciplina string `form:"disciplina" binding:"required,notblank,max=64,text"`
	Semestre   string `form:"semestre" binding:"required,semester"`
	CSRFToken  string `form:"csrf_token"`
}

// Errors maps a form field to its validation messages.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == apperrors.ErrValidation
}

var registerOnce sync.Once

// RegisterValidators installs the custom tags on gin's validator engine:
// "semester" (one of the fixture labels), "notblank" (not only whitespace)
// and "text" (valid UTF-8 without NUL bytes, which PostgreSQL refuses).
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("semester", func(fl validator.FieldLevel) bool {
				return models.IsSemesterLabel(fl.Field().String())
			})
			_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
				return strings.TrimSpace(fl.Field().String()) != ""
			})
			_ = v.RegisterValidation("text", func(fl validator.FieldLevel) bool {
				return isStorableText(fl.Field().String())
			})
		}
	})
}

func isStorableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

func messageFor(fe validator.FieldError) string {
	if fe.Field() == "Semestre" {
		return MsgInvalidSemester
	}
	switch fe.Tag() {
	case "max":
		return MsgTooLong
	case "text":
		return MsgInvalidText
	default:
		return MsgRequired
	}
}

var fieldKeys = map[string]string{
	"Disciplina": "disciplina",
	"Semestre":   "semestre",
}

// BindDiscipline parses and validates the submission. expectedCSRF is the
// token held in the client's session.
func BindDiscipline(c *gin.Context, expectedCSRF string) (DisciplineForm, error) {
	RegisterValidators()

	var form DisciplineForm
	errs := Errors{}

	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs.Add(FormKey, MsgMalformed)
			return form, errs
		}
		for _, fe := range verrs {
			key, ok := fieldKeys[fe.Field()]
			if !ok {
				key = strings.ToLower(fe.Field())
			}
			errs.Add(key, messageFor(fe))
		}
	}

	if !utils.TokensEqual(form.CSRFToken, expectedCSRF) {
		errs.Add(FormKey, MsgInvalidCSRF)
	}

	if len(errs) > 0 {
		return form, errs
	}
	return form, nil
}
