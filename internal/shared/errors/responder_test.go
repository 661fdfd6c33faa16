package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errGone = errors.New("gone")

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/things/:id", handler)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/7", nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ProblemDetail {
	t.Helper()
	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	return problem
}

func TestChainedResponder_UsesFirstMatchingMapper(t *testing.T) {
	responder := NewChainedResponder("",
		func(err error) (ProblemDetail, bool) {
			if errors.Is(err, errGone) {
				return ErrNotFound.WithDetail(err.Error()), true
			}
			return ProblemDetail{}, false
		},
	)
	w := serve(t, func(c *gin.Context) {
		responder.RespondError(c, fmt.Errorf("lookup: %w", errGone))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	problem := decode(t, w)
	assert.Equal(t, TypeNotFound, problem.Type)
	assert.Equal(t, "/things/7", problem.Instance)
	assert.Equal(t, "lookup: gone", problem.Detail)
}

func TestChainedResponder_FallsBackToInternal(t *testing.T) {
	responder := NewChainedResponder("https://example.com")
	w := serve(t, func(c *gin.Context) {
		responder.RespondError(c, errors.New("db password is hunter2"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	problem := decode(t, w)
	assert.Equal(t, "https://example.com"+TypeInternal, problem.Type)
	assert.NotContains(t, problem.Detail, "hunter2")
}

func TestWithExtension_DoesNotMutateTemplate(t *testing.T) {
	problem := NewValidationProblem([]string{"orderItems"})
	require.Contains(t, problem.Extensions, "violations")
	assert.Nil(t, ErrValidation.Extensions)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
}

func TestNewNotFoundProblem(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		NewResponder("").Respond(c, NewNotFoundProblem("Order", c.Param("id")))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	problem := decode(t, w)
	assert.Equal(t, "Order with identifier '7' not found", problem.Detail)
	assert.Equal(t, "Order", problem.Extensions["resourceType"])
	assert.Equal(t, "7", problem.Extensions["identifier"])
	assert.Nil(t, ErrNotFound.Extensions)
}

func TestResponder_BadRequest(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		NewResponder("").BadRequest(c, "id is required")
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	problem := decode(t, w)
	assert.Equal(t, TypeBadRequest, problem.Type)
	assert.Equal(t, "id is required", problem.Detail)
}
