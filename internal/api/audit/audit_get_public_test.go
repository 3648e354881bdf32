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

package audit_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	auditapi "github.com/hackadmin/hackadmin/internal/api/audit"
	auditstore "github.com/hackadmin/hackadmin/internal/audit"
)

const entryID = "0192f5c2-3b1a-7c4e-9d2f-1a2b3c4d5e6f"

type AuditGetPublicTestSuite struct {
	suite.Suite

	handler *auditapi.Audit
	store   *fakeStore
}

func (s *AuditGetPublicTestSuite) SetupTest() {
	s.store = &fakeStore{}
	s.handler = auditapi.New(slog.Default(), s.store)
}

func (s *AuditGetPublicTestSuite) TestGetAuditLogByID() {
	tests := []struct {
		name         string
		id           string
		setupStore   func()
		wantCode     int
		validateFunc func(body []byte)
	}{
		{
			name: "returns entry successfully",
			id:   entryID,
			setupStore: func() {
				s.store.getEntry = &auditstore.Entry{
					ID:           entryID,
					Timestamp:    time.Now(),
					Subject:      "gcp-1",
					Role:         "Team",
					Method:       "GET",
					Path:         "/users",
					ResponseCode: 200,
				}
			},
			wantCode: http.StatusOK,
			validateFunc: func(body []byte) {
				var entry auditstore.Entry
				s.Require().NoError(json.Unmarshal(body, &entry))
				s.Equal(entryID, entry.ID)
				s.Equal("Team", entry.Role)
			},
		},
		{
			name:       "returns 400 when id is not a uuid",
			id:         "not-a-uuid",
			setupStore: func() {},
			wantCode:   http.StatusBadRequest,
			validateFunc: func(body []byte) {
				s.Contains(string(body), "uuid")
			},
		},
		{
			name: "returns 404 when not found",
			id:   entryID,
			setupStore: func() {
				s.store.getErr = fmt.Errorf("%w: %s", auditstore.ErrNotFound, entryID)
			},
			wantCode: http.StatusNotFound,
			validateFunc: func(body []byte) {
				s.JSONEq(`{"error":"audit entry not found"}`, string(body))
			},
		},
		{
			name: "returns 500 on store error",
			id:   entryID,
			setupStore: func() {
				s.store.getErr = fmt.Errorf("kv unavailable")
			},
			wantCode: http.StatusInternalServerError,
			validateFunc: func(body []byte) {
				s.JSONEq(`{"error":"failed to get audit entry"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupStore()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/audit/"+tt.id, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			s.NoError(s.handler.GetAuditLogByID(c))
			s.Equal(tt.wantCode, rec.Code)
			tt.validateFunc(rec.Body.Bytes())
		})
	}
}

func TestAuditGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(AuditGetPublicTestSuite))
}
