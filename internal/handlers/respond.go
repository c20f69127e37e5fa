package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/apperr"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/datefmt"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/logging"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/validate"
)

// endpoint is a handler that returns its outcome instead of writing it.
type endpoint func(r *http.Request) (result, error)

type result struct {
	status int
	body   any
}

func ok(body any) result      { return result{status: http.StatusOK, body: body} }
func created(body any) result { return result{status: http.StatusCreated, body: body} }

func message(msg string) result {
	return ok(map[string]string{"message": msg})
}

// serve adapts an endpoint to net/http. Errors are classified by
// apperr.Status and written as {"error": msg}.
func serve(e endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := e(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, res.status, res.body)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		logging.Ctx(r.Context()).Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, status, map[string]string{"error": apperr.Message(err)})
}

// pathID parses a decimal id from the named path parameter.
func pathID(r *http.Request, name string) (uint, error) {
	n, err := strconv.ParseUint(chi.URLParam(r, name), 10, 0)
	if err != nil {
		return 0, apperr.Invalid(msgInvalidID)
	}
	return uint(n), nil
}

func pathIDs(r *http.Request, parent, child string) (uint, uint, error) {
	p, err := pathID(r, parent)
	if err != nil {
		return 0, 0, err
	}
	c, err := pathID(r, child)
	if err != nil {
		return 0, 0, err
	}
	return p, c, nil
}

// decode reads a JSON body into dst and validates it.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid(msgEmptyBody)
		}
		return apperr.Invalid(msgInvalidBody)
	}
	return validate.Struct(dst)
}

// decodeUpdate is decode for partial updates, where a missing body means
// no field changes.
func decodeUpdate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Invalid(msgInvalidBody)
	}
	return validate.Struct(dst)
}

func parseDate(s string) (time.Time, error) {
	t, err := datefmt.Parse(s)
	if err != nil {
		return time.Time{}, apperr.Invalid(msgInvalidDate)
	}
	return t, nil
}

// lookupFailed classifies a failed load of the row an endpoint acts on.
// Reads use apperr.Read; updates and deletes use writeFailed.
type lookupFailed func(err error, msg string) error

// writeFailed reports any lookup failure on an update or delete as NotFound.
func writeFailed(err error, msg string) error { return apperr.Write(msg, err) }

type existsFunc func(ctx context.Context, id uint) (bool, error)

// requireRow fails with NotFound(msg) when check reports id missing.
func requireRow(ctx context.Context, check existsFunc, id uint, msg string) error {
	found, err := check(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound(msg)
	}
	return nil
}

// optionalID treats nil and zero as "not given".
func optionalID(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

// givenDate reports whether a partial update carries a date. "" counts as
// omitted.
func givenDate(s *string) bool { return s != nil && *s != "" }

// optionalText treats nil and "" as "not given".
func optionalText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
