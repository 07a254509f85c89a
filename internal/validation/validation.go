// Package validation checks directory records before they are written.
//
// Scalar rules live in `validate` struct tags on the models and are run by
// go-playground/validator. JSON container columns are checked separately because their
// shape is only known after decoding. Every violation is collected; nothing fails fast.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/dangerclosesec/hub/internal/domain"
	"github.com/dangerclosesec/hub/internal/model"
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

type containerShape int

const (
	listOfStrings containerShape = iota
	mapOfURLs
)

// container describes one JSON column of a record.
type container struct {
	field string
	shape containerShape
	value *datatypes.JSON
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// RegisterValidation only fails for an empty tag or nil func.
	_ = v.RegisterValidation("absurl", func(fl validator.FieldLevel) bool {
		return IsAbsoluteURL(fl.Field().String())
	})
	return &Validator{validate: v}
}

// IsAbsoluteURL reports whether s parses as a URL with both scheme and host.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Validate checks rec and normalizes its container columns in place. It returns a
// *domain.FieldValidationError listing every violated field, or nil.
func (v *Validator) Validate(rec model.Record) error {
	verr := &domain.FieldValidationError{Kind: string(rec.Kind())}

	if err := v.validate.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validating %s: %w", rec.Kind(), err)
		}
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), message(fe))
		}
	}

	for _, c := range containersOf(rec) {
		checkContainer(c, verr)
	}

	if len(verr.Fields) == 0 {
		return nil
	}
	sort.SliceStable(verr.Fields, func(i, j int) bool { return verr.Fields[i].Field < verr.Fields[j].Field })
	return verr
}

func containersOf(rec model.Record) []container {
	switch r := rec.(type) {
	case *model.Person:
		return []container{{field: "interests", shape: listOfStrings, value: &r.Interests}}
	case *model.Community:
		return []container{{field: "links", shape: mapOfURLs, value: &r.Links}}
	case *model.School:
		return []container{{field: "programs", shape: listOfStrings, value: &r.Programs}}
	}
	return nil
}

func checkContainer(c container, verr *domain.FieldValidationError) {
	raw := bytes.TrimSpace(*c.value)

	switch c.shape {
	case listOfStrings:
		if len(raw) == 0 {
			*c.value = model.StringList()
			return
		}
		var items []string
		if raw[0] != '[' || json.Unmarshal(raw, &items) != nil {
			verr.Add(c.field, "must be a list of strings")
			return
		}
		*c.value = model.StringList(items...)

	case mapOfURLs:
		if len(raw) == 0 {
			*c.value = model.StringMap(nil)
			return
		}
		var links map[string]string
		if raw[0] != '{' || json.Unmarshal(raw, &links) != nil {
			verr.Add(c.field, "must be a mapping of platform names to URLs")
			return
		}
		keys := make([]string, 0, len(links))
		for k := range links {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if u := links[k]; u != "" && !IsAbsoluteURL(u) {
				verr.Add(c.field, fmt.Sprintf("enter a valid URL for %s", k))
			}
		}
		*c.value = model.StringMap(links)
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "absurl":
		return fmt.Sprintf("enter a valid URL for %s", fe.Field())
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
