package failure

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequestFromString("bad"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("no"), http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"not found", NotFound("booking"), http.StatusNotFound},
		{"conflict", Conflict("Slot already booked"), http.StatusConflict},
		{"too many requests", TooManyRequests("slow down"), http.StatusTooManyRequests},
		{"internal", InternalError(errors.New("boom")), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("create: %w", Conflict("taken")), http.StatusConflict},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestNilConstructors(t *testing.T) {
	assert.Nil(t, BadRequest(nil))
	assert.Nil(t, InternalError(nil))
	assert.Equal(t, "boom", BadRequest(errors.New("boom")).Error())
}
