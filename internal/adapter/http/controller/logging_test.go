package controller

import (
	"errors"
	"net/http"
	"testing"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/usecase/services"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrRecordNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("get transfer"), domain.ErrRecordNotFound), http.StatusNotFound},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"validation", &domain.ValidationError{Problems: []string{"bad"}}, http.StatusBadRequest},
		{"authorization", &domain.AuthorizationError{Actor: "x", RequiredRole: "admin"}, http.StatusForbidden},
		{"invalid state", &domain.InvalidStateError{TransferID: "t", Action: "approve", Status: domain.TransferStatusRejected}, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusForError(tc.err); got != tc.want {
				t.Fatalf("statusForError(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
