package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testContext creates a gin context backed by a recorder and a request so
// request-scoped helpers (logger, trace) have something to read.
func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	return resp
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.NewValidationError("text", "is required"), http.StatusBadRequest},
		{"unauthorized", domain.NewUnauthorizedError("Invalid credentials"), http.StatusUnauthorized},
		{"not found", domain.NewNotFoundError("quote", "q-1"), http.StatusNotFound},
		{"conflict", domain.NewConflictError("profile", "Email already registered"), http.StatusBadRequest},
		{"unavailable", domain.NewUnavailableError("store", "connection refused"), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForError(tt.err))
		})
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:   "nil error",
			err:    nil,
			status: http.StatusOK,
		},
		{
			name:    "validation error uses field and message",
			err:     domain.NewValidationError("text", "is required"),
			status:  http.StatusBadRequest,
			message: "text is required",
		},
		{
			name:    "validation error without field",
			err:     domain.NewValidationError("", "at least one value is required"),
			status:  http.StatusBadRequest,
			message: "at least one value is required",
		},
		{
			name:    "unauthorized error uses reason",
			err:     domain.NewUnauthorizedError("Invalid credentials"),
			status:  http.StatusUnauthorized,
			message: "Invalid credentials",
		},
		{
			name:    "conflict error uses reason",
			err:     domain.NewConflictError("profile", "Email already registered"),
			status:  http.StatusBadRequest,
			message: "Email already registered",
		},
		{
			name:    "not found keeps full message",
			err:     domain.NewNotFoundError("quote", "q-1"),
			status:  http.StatusNotFound,
			message: `quote with id "q-1" not found`,
		},
		{
			name:    "unexpected error gets generic message",
			err:     errors.New("pq: relation quotes does not exist"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.status, status)

			if tt.err == nil {
				assert.Nil(t, resp)
				return
			}

			require.NotNil(t, resp)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("internal error uses fallback message", func(t *testing.T) {
		c, w := testContext(t)

		HandleError(c, errors.New("driver: bad connection"), "Failed to fetch quotes")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Failed to fetch quotes", resp.Error)
	})

	t.Run("internal error without fallback keeps generic message", func(t *testing.T) {
		c, w := testContext(t)

		HandleError(c, errors.New("driver: bad connection"), "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeError(t, w).Error)
	})

	t.Run("client error ignores fallback", func(t *testing.T) {
		c, w := testContext(t)

		HandleError(c, domain.NewNotFoundError("favorite", ""), "Failed to fetch favorites")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "favorite not found", decodeError(t, w).Error)
	})
}

func TestRespondWithMessage(t *testing.T) {
	c, w := testContext(t)

	RespondWithMessage(c, http.StatusBadRequest, "Invalid query parameters")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid query parameters", resp.Error)
}

func TestAbortWithError(t *testing.T) {
	c, w := testContext(t)

	AbortWithError(c, domain.NewUnauthorizedError("Invalid or expired token"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeError(t, w).Error)
}

func TestHandleBindError(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required,notempty"`
	}

	t.Run("first field in name order wins", func(t *testing.T) {
		err := Validate(payload{})
		require.Error(t, err)

		c, w := testContext(t)
		HandleBindError(c, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email this field is required", decodeError(t, w).Error)
	})

	t.Run("non-validator error falls back to generic message", func(t *testing.T) {
		c, w := testContext(t)
		HandleBindError(c, errors.New("unexpected EOF"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, w).Error)
	})
}

func TestResponseEnvelopes(t *testing.T) {
	t.Run("error envelope", func(t *testing.T) {
		raw, err := json.Marshal(NewErrorResponse("Quote not found"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"error":"Quote not found"}`, string(raw))
	})

	t.Run("data envelope", func(t *testing.T) {
		raw, err := json.Marshal(NewDataResponse(map[string]int{"likes": 3}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":{"likes":3}}`, string(raw))
	})

	t.Run("list envelope with pagination", func(t *testing.T) {
		page := ports.NormalizePage(2, 20)
		raw, err := json.Marshal(NewListResponse([]string{"a"}, NewPagination(page, 45)))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"success": true,
			"data": ["a"],
			"pagination": {"page": 2, "limit": 20, "total": 45, "pages": 3}
		}`, string(raw))
	})

	t.Run("list envelope omits nil pagination", func(t *testing.T) {
		raw, err := json.Marshal(NewListResponse([]string{"a"}, nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":["a"]}`, string(raw))
	})
}

func TestPageQueryToPage(t *testing.T) {
	tests := []struct {
		name  string
		query PageQuery
		want  ports.Page
	}{
		{"defaults applied", PageQuery{}, ports.Page{Number: 1, Limit: ports.DefaultPageLimit}},
		{"negative values normalized", PageQuery{Page: -3, Limit: -1}, ports.Page{Number: 1, Limit: ports.DefaultPageLimit}},
		{"limit capped", PageQuery{Page: 2, Limit: 500}, ports.Page{Number: 2, Limit: ports.MaxPageLimit}},
		{"valid values kept", PageQuery{Page: 4, Limit: 10}, ports.Page{Number: 4, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.ToPage())
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  ports.Page
		total int
		want  Pagination
	}{
		{"partial last page", ports.Page{Number: 1, Limit: 20}, 45, Pagination{Page: 1, Limit: 20, Total: 45, Pages: 3}},
		{"exact fit", ports.Page{Number: 2, Limit: 10}, 40, Pagination{Page: 2, Limit: 10, Total: 40, Pages: 4}},
		{"empty result set", ports.Page{Number: 1, Limit: 20}, 0, Pagination{Page: 1, Limit: 20, Total: 0, Pages: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *NewPagination(tt.page, tt.total))
		})
	}
}

func TestValidateCustomTags(t *testing.T) {
	type payload struct {
		ID   string `json:"id" validate:"omitempty,uuid"`
		Name string `json:"name" validate:"notempty"`
	}

	t.Run("valid payload", func(t *testing.T) {
		err := Validate(payload{ID: "c6f1b7c0-68b9-4f1e-9a93-0f2e5cbb6d58", Name: "Rumi"})
		assert.NoError(t, err)
	})

	t.Run("invalid uuid", func(t *testing.T) {
		err := Validate(payload{ID: "not-a-uuid", Name: "Rumi"})
		require.Error(t, err)
		assert.Contains(t, ValidationErrors(err), "id")
	})

	t.Run("whitespace fails notempty", func(t *testing.T) {
		err := Validate(payload{Name: "   "})
		require.Error(t, err)

		fieldErrors := ValidationErrors(err)
		assert.Equal(t, "must not be empty", fieldErrors["name"])
	})
}

func TestValidationErrorsMessages(t *testing.T) {
	type payload struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=admin member"`
	}

	err := Validate(payload{Email: "nope", Password: "short", Role: "guest"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	fieldErrors := ValidationErrors(err)
	assert.Equal(t, "must be a valid email address", fieldErrors["email"])
	assert.Equal(t, "must be at least 8 characters", fieldErrors["password"])
	assert.Equal(t, "must be one of: admin member", fieldErrors["role"])
}
