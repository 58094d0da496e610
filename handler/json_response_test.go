package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/handler"
	"github.com/dmitrymomot/pagekit/pkg/binder"
	"github.com/dmitrymomot/pagekit/pkg/validator"
)

func renderJSON(t *testing.T, resp handler.Response) (int, handler.JSONResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/api/signup/validate", nil)))
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestJSON(t *testing.T) {
	t.Parallel()

	code, body := renderJSON(t, handler.JSON(map[string]bool{"valid": true}))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"valid": true}, body.Data)
	assert.Nil(t, body.Error)

	code, _ = renderJSON(t, handler.JSON("x", handler.WithJSONStatus(http.StatusAccepted)))
	assert.Equal(t, http.StatusAccepted, code)
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		verr := handler.NewValidationError()
		verr.Add("password", "Password must be at least 6 characters.")
		verr.Add("email", "Please enter a valid email address.")

		code, body := renderJSON(t, handler.JSONError(fmt.Errorf("signup: %w", verr)))
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"Password must be at least 6 characters."}, body.Error.Details["password"])
		assert.Equal(t, []string{"Please enter a valid email address."}, body.Error.Details["email"])
	})

	t.Run("rule failures", func(t *testing.T) {
		t.Parallel()
		var rules validator.ValidationErrors
		rules.Add(validator.ValidationError{Field: "name", Code: "INVALID_CHARS", Message: "Name can only contain letters and spaces."})
		rules.Add(validator.ValidationError{Field: "confirm-password", Code: "MISMATCH", Message: "Passwords do not match."})

		code, body := renderJSON(t, handler.JSONError(rules))
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, map[string][]string{
			"name":             {"Name can only contain letters and spaces."},
			"confirm-password": {"Passwords do not match."},
		}, body.Error.Details)
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		code, body := renderJSON(t, handler.JSON(handler.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "not_found", body.Error.Code)
	})

	t.Run("binder error", func(t *testing.T) {
		t.Parallel()
		code, body := renderJSON(t, handler.JSONError(fmt.Errorf("%w: boom", binder.ErrInvalidJSON)))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "bad_request", body.Error.Code)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		t.Parallel()
		code, body := renderJSON(t, handler.JSONError(errors.New("db password leaked")))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal_server_error", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "leaked")
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	verr := handler.NewValidationError()
	assert.Equal(t, "validation failed", verr.Error())

	verr.Add("name", "Name is required.")
	verr.Add("confirm-password", "Passwords do not match.")
	assert.Equal(t, []string{"Name is required."}, verr["name"])
	assert.Equal(t, "validation error: confirm-password: Passwords do not match., name: Name is required.", verr.Error())
}
