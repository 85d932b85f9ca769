// Package rest carries the HTTP plumbing shared by the service handlers:
// JSON responses, request decoding with validation, and mapping of domain
// errors to status codes.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/avvvet/playhub-services/internal/apperr"
	"github.com/go-chi/chi"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// Response is the envelope used by the operational endpoints (health).
type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so messages match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// CreateResponse writes rsp as JSON with rsp.Code as status.
func CreateResponse(w http.ResponseWriter, rsp Response) {
	JSON(w, rsp.Code, rsp)
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

// Error maps err onto a plain-text response. Not-found and validation errors
// carry their message; anything else is logged and hidden behind a 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case apperr.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Decode reads a JSON body into dst and runs its validate tags.
func Decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &apperr.ValidationError{Reason: fmt.Sprintf("malformed request body: %v", err)}
	}
	return Validate(dst)
}

// Validate runs the validate tags of v and converts the first failure to an
// apperr.ValidationError.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &apperr.ValidationError{Reason: err.Error()}
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apperr.Invalid(fe.Field(), "is required")
	case "oneof":
		return apperr.Invalid(fe.Field(), "must be one of "+fe.Param())
	default:
		return apperr.Invalid(fe.Field(), "failed "+fe.Tag()+" check")
	}
}

// PathParam returns the named chi URL parameter decoded. chi matches on
// URL.RawPath when the request keeps one, leaving escapes like %2F in place.
func PathParam(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	if r.URL.RawPath == "" {
		return raw, nil
	}
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperr.Invalid(param, "malformed path escape")
	}
	return v, nil
}

// ParseID reads the named chi URL parameter as an int64 id.
func ParseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Invalid(param, "must be an integer")
	}
	return id, nil
}
