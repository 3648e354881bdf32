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

package export

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/hackadmin/hackadmin/internal/audit"
)

type FileInternalTestSuite struct {
	suite.Suite

	ctx   context.Context
	appFs afero.Fs
}

func (s *FileInternalTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.appFs = afero.NewMemMapFs()
}

func (s *FileInternalTestSuite) TestCloseAfterFailedFlush() {
	f, err := s.appFs.Create("/audit.jsonl")
	s.Require().NoError(err)

	e := &FileExporter{
		Path: "/audit.jsonl",
		file: f,
		buf:  bufio.NewWriterSize(failWriter{}, 16),
	}
	e.enc = json.NewEncoder(e.buf)

	// Small enough to stay buffered until Close.
	_, _ = e.buf.WriteString("{}")

	err = e.Close(s.ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "flushing export file /audit.jsonl")
	s.Nil(e.file)
	s.Nil(e.enc)
	s.ErrorIs(e.Write(s.ctx, audit.Entry{}), errNotOpened)

	_, err = f.WriteString("x")
	s.Error(err, "underlying file should be closed")
}

func (s *FileInternalTestSuite) TestWriteEncodeFailureNamesEntry() {
	e := &FileExporter{buf: bufio.NewWriterSize(failWriter{}, 16)}
	e.enc = json.NewEncoder(e.buf)

	err := e.Write(s.ctx, audit.Entry{
		ID:        "0192e3a4-0000-7000-8000-000000000001",
		Timestamp: time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC),
		Subject:   "gcp-1",
		Path:      "/users",
	})

	s.Require().Error(err)
	s.Contains(err.Error(), "encoding audit entry 0192e3a4-0000-7000-8000-000000000001")
}

func TestFileInternalTestSuite(t *testing.T) {
	suite.Run(t, new(FileInternalTestSuite))
}

type failWriter struct{}

func (failWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("device full")
}
