// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package users_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/hackadmin/hackadmin/internal/api/users"
	"github.com/hackadmin/hackadmin/internal/authz"
	"github.com/hackadmin/hackadmin/internal/repository"
)

// fakeStore is an in-memory users.Store.
type fakeStore struct {
	records map[string]authz.User
	err     error
	deleted []string
}

func (f *fakeStore) ListUsers(
	_ context.Context,
) ([]authz.User, error) {
	if f.err != nil {
		return nil, f.err
	}

	out := make([]authz.User, 0, len(f.records))
	for _, id := range []string{"u-1", "u-2"} {
		if u, ok := f.records[id]; ok {
			out = append(out, u)
		}
	}

	return out, nil
}

func (f *fakeStore) GetUser(
	_ context.Context,
	id string,
) (*authz.User, error) {
	if f.err != nil {
		return nil, f.err
	}

	u, ok := f.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &u, nil
}

func (f *fakeStore) DeleteUser(
	_ context.Context,
	id string,
) error {
	if f.err != nil {
		return f.err
	}

	if _, ok := f.records[id]; !ok {
		return repository.ErrNotFound
	}

	f.deleted = append(f.deleted, id)
	delete(f.records, id)

	return nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: map[string]authz.User{
			"u-1": {ID: "u-1", FirstName: "Ada", LastName: "Lovelace", GcpID: "gcp-1"},
			"u-2": {ID: "u-2", FirstName: "Alan", LastName: "Turing", GcpID: "gcp-2"},
		},
	}
}

type UsersPublicTestSuite struct {
	suite.Suite

	e *echo.Echo
}

func (s *UsersPublicTestSuite) SetupTest() {
	s.e = echo.New()
}

func (s *UsersPublicTestSuite) serve(
	handler echo.HandlerFunc,
	method string,
	id string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/users/"+id, nil)
	rec := httptest.NewRecorder()

	c := s.e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}

	s.Require().NoError(handler(c))

	return rec
}

func (s *UsersPublicTestSuite) TestListUsers() {
	tests := []struct {
		name         string
		storeErr     error
		wantCode     int
		validateFunc func(body []byte)
	}{
		{
			name:     "returns every user",
			wantCode: http.StatusOK,
			validateFunc: func(body []byte) {
				var got []authz.User
				s.Require().NoError(json.Unmarshal(body, &got))
				s.Len(got, 2)
				s.Equal("u-1", got[0].ID)
				s.Equal("u-2", got[1].ID)
			},
		},
		{
			name:     "store error returns 500",
			storeErr: fmt.Errorf("connection reset"),
			wantCode: http.StatusInternalServerError,
			validateFunc: func(body []byte) {
				s.JSONEq(`{"error":"failed to list users"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			store := newFakeStore()
			store.err = tt.storeErr
			h := users.New(slog.Default(), store)

			rec := s.serve(h.ListUsers, http.MethodGet, "")

			s.Equal(tt.wantCode, rec.Code)
			tt.validateFunc(rec.Body.Bytes())
		})
	}
}

func (s *UsersPublicTestSuite) TestGetUser() {
	tests := []struct {
		name         string
		id           string
		storeErr     error
		wantCode     int
		validateFunc func(body []byte)
	}{
		{
			name:     "returns the user",
			id:       "u-2",
			wantCode: http.StatusOK,
			validateFunc: func(body []byte) {
				var got authz.User
				s.Require().NoError(json.Unmarshal(body, &got))
				s.Equal("Turing", got.LastName)
				s.Equal("gcp-2", got.GcpID)
			},
		},
		{
			name:     "missing user returns 404",
			id:       "u-9",
			wantCode: http.StatusNotFound,
			validateFunc: func(body []byte) {
				s.JSONEq(`{"error":"user not found"}`, string(body))
			},
		},
		{
			name:     "store error returns 500",
			id:       "u-1",
			storeErr: fmt.Errorf("connection reset"),
			wantCode: http.StatusInternalServerError,
			validateFunc: func(body []byte) {
				s.JSONEq(`{"error":"failed to get user"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			store := newFakeStore()
			store.err = tt.storeErr
			h := users.New(slog.Default(), store)

			rec := s.serve(h.GetUser, http.MethodGet, tt.id)

			s.Equal(tt.wantCode, rec.Code)
			tt.validateFunc(rec.Body.Bytes())
		})
	}
}

func (s *UsersPublicTestSuite) TestDeleteUser() {
	tests := []struct {
		name        string
		id          string
		storeErr    error
		wantCode    int
		wantBody    string
		wantDeleted []string
	}{
		{
			name:        "deletes the user",
			id:          "u-1",
			wantCode:    http.StatusOK,
			wantBody:    `{"id":"u-1","deleted":true}`,
			wantDeleted: []string{"u-1"},
		},
		{
			name:     "missing user returns 404",
			id:       "u-9",
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"user not found"}`,
		},
		{
			name:     "store error returns 500",
			id:       "u-1",
			storeErr: fmt.Errorf("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed to delete user"}`,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			store := newFakeStore()
			store.err = tt.storeErr
			h := users.New(slog.Default(), store)

			rec := s.serve(h.DeleteUser, http.MethodDelete, tt.id)

			s.Equal(tt.wantCode, rec.Code)
			s.JSONEq(tt.wantBody, rec.Body.String())
			s.Equal(tt.wantDeleted, store.deleted)
		})
	}
}

func TestUsersPublicTestSuite(t *testing.T) {
	suite.Run(t, new(UsersPublicTestSuite))
}
