package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"io/ioutil"
	"ledger/internal/app/apperr"
	"ledger/internal/app/logger"
	"net/http"
	"strconv"
)

var validate = validator.New()

// readBody into json struct
func readBody(r *http.Request, v interface{}) error {
	body, err := ioutil.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		return fmt.Errorf("body read: %w", err)
	}

	err = json.Unmarshal(body, v)
	if err != nil {
		return fmt.Errorf("json decode: %w", err)
	}

	return nil
}

// urlID reads a positive int64 url parameter
func urlID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s should be a positive integer", apperr.ErrInvalidInput, key)
	}
	return id, nil
}

type jsonError struct {
	Message string `json:"error"`
}

// WriteError formatted in json
func WriteError(w http.ResponseWriter, err error, statusCode int) {
	WriteResponse(w, &jsonError{Message: err.Error()}, statusCode)
}

// WriteResponse formatted in json
func WriteResponse(w http.ResponseWriter, v interface{}, statusCode int) {
	resBody, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(resBody)
}

var errInternal = errors.New("internal error")

var ledgerStatuses = []struct {
	err    error
	status int
}{
	{apperr.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{apperr.ErrInvalidInput, http.StatusUnprocessableEntity},
	{apperr.ErrDuplicateAccount, http.StatusUnprocessableEntity},
	{apperr.ErrNotFound, http.StatusNotFound},
	{apperr.ErrInsufficientFunds, http.StatusPaymentRequired},
	{apperr.ErrInvalidState, http.StatusConflict},
	{apperr.ErrConflict, http.StatusConflict},
	{apperr.ErrProtected, http.StatusConflict},
	{apperr.ErrLockTimeout, http.StatusServiceUnavailable},
	{apperr.ErrSerialization, http.StatusServiceUnavailable},
}

// writeLedgerError maps ledger errors to response codes.
// Only the apperr text is sent, the wrapped detail goes to the log.
func writeLedgerError(w http.ResponseWriter, l logger.Logger, err error) {
	for _, s := range ledgerStatuses {
		if !errors.Is(err, s.err) {
			continue
		}
		l.Debug().Err(err).Int("status", s.status).Msg("Request rejected")
		if s.status == http.StatusServiceUnavailable {
			w.Header().Set("Retry-After", "1")
		}
		WriteError(w, s.err, s.status)
		return
	}

	l.Error().Err(err).Msg("Internal error")
	WriteError(w, errInternal, http.StatusInternalServerError)
}

type ValidationErrorResponse struct {
	Errors ValidationErrors `json:"errors"`
}

type ValidationErrors []ValidationError

type ValidationError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
	Value string `json:"value"`
}

// validateData and send errors, returns true if no validation errors
func validateData(w http.ResponseWriter, v interface{}) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		WriteError(w, err, http.StatusBadRequest)
		return false
	}

	errs := make(ValidationErrors, 0, len(verrs))
	for _, e := range verrs {
		errs = append(errs, ValidationError{
			Msg:   e.Error(),
			Param: e.Field(),
			Value: fmt.Sprintf("%v", e.Value()),
		})
	}
	writeValidationErrors(w, errs)

	return false
}

// writeValidationErrors formatted in json
func writeValidationErrors(w http.ResponseWriter, errors ValidationErrors) {
	WriteResponse(w, ValidationErrorResponse{errors}, http.StatusBadRequest)
}
