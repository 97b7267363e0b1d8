package resp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ncobase/mediator/ecode"
	"github.com/ncobase/mediator/paging"
	"github.com/ncobase/mediator/result"
	"github.com/ncobase/mediator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorsValidation(t *testing.T) {
	verr := validation.NewError([]validation.FieldError{
		{Field: "name", Code: "required", Message: "name is required"},
		{Field: "price", Code: "gt", Message: "price must be positive"},
		{Field: "name", Code: "max", Message: "name is too long"},
	})
	ex := FromErrors(verr.Results())

	assert.Equal(t, http.StatusBadRequest, ex.Status)
	assert.Equal(t, ecode.Validation, ex.Code)
	assert.Equal(t, map[string][]string{
		"name":  {"name is required", "name is too long"},
		"price": {"price must be positive"},
	}, ex.Errors)
}

func TestFromErrorsFirstHTTPWins(t *testing.T) {
	ex := FromErrors([]result.Error{
		result.NewError("plain", "no status"),
		result.NotFound("product", "42"),
		result.Conflict("later"),
	})
	assert.Equal(t, http.StatusNotFound, ex.Status)
	assert.Equal(t, ecode.NotFound, ex.Code)
}

func TestFromErrorsHidesInternalDetails(t *testing.T) {
	ex := FromErrors([]result.Error{result.Internal(errors.New("password=secret"))})
	assert.Equal(t, http.StatusInternalServerError, ex.Status)
	assert.Equal(t, ecode.Internal, ex.Code)
	assert.NotContains(t, ex.Message, "secret")
}

func TestResultWriters(t *testing.T) {
	w := httptest.NewRecorder()
	Result(w, result.Ok())
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	Result(w, result.Fail(result.Conflict("duplicate")))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"code":"conflict","message":"duplicate"}`, w.Body.String())

	w = httptest.NewRecorder()
	Value(w, http.StatusCreated, result.Success(map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

func TestPaged(t *testing.T) {
	page := &paging.Response[int]{Results: []int{1}, Total: 3}
	require.NoError(t, paging.Decorate("List", paging.NewRequest(0, 1), page, paging.UrlBuilderFunc(
		func(action string, q paging.Query) (*url.URL, error) {
			return &url.URL{Path: "/list", RawQuery: q.Encode()}, nil
		})))

	w := httptest.NewRecorder()
	Paged(w, page)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["total"])
	assert.Equal(t, "/list?cursor=1&limit=1", body["links"].(map[string]any)["next"])

	w = httptest.NewRecorder()
	Paged[int](w, nil)
	assert.JSONEq(t, `{"results":[],"total":0}`, w.Body.String())
}

func TestSuccessAndFail(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w)
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	Success(w, "done")
	assert.JSONEq(t, `{"message":"done"}`, w.Body.String())

	w = httptest.NewRecorder()
	Fail(w, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"internal","message":"An unexpected error occurred"}`, w.Body.String())

	w = httptest.NewRecorder()
	Fail(w, &Exception{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
