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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hackadmin/hackadmin/internal/audit"
)

// exportFileMode keeps subjects and source addresses private to the owner.
const exportFileMode os.FileMode = 0o600

var errNotOpened = errors.New("audit export file not opened")

// FileExporter writes audit entries to a JSON Lines file on an afero.Fs.
type FileExporter struct {
	Path string

	appFs afero.Fs
	file  afero.File
	buf   *bufio.Writer
	enc   *json.Encoder
}

// NewFileExporter returns an exporter for path. Nothing is created until Open.
func NewFileExporter(
	appFs afero.Fs,
	path string,
) *FileExporter {
	return &FileExporter{
		Path:  path,
		appFs: appFs,
	}
}

// Open creates the parent directory if needed and truncates Path.
func (e *FileExporter) Open(
	_ context.Context,
) error {
	dir := filepath.Dir(e.Path)
	if exists, _ := afero.DirExists(e.appFs, dir); !exists {
		if err := e.appFs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating export directory %s: %w", dir, err)
		}
	}

	f, err := e.appFs.OpenFile(e.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, exportFileMode)
	if err != nil {
		return fmt.Errorf("opening export file %s: %w", e.Path, err)
	}

	e.file = f
	e.buf = bufio.NewWriter(f)
	e.enc = json.NewEncoder(e.buf)
	e.enc.SetEscapeHTML(false)

	return nil
}

// Write encodes entry as one line.
func (e *FileExporter) Write(
	_ context.Context,
	entry audit.Entry,
) error {
	if e.enc == nil {
		return errNotOpened
	}

	if err := e.enc.Encode(entry); err != nil {
		return fmt.Errorf("encoding audit entry %s: %w", entry.ID, err)
	}

	return nil
}

// Close flushes, syncs and closes the file. The file is closed even when
// the flush fails.
func (e *FileExporter) Close(
	_ context.Context,
) error {
	if e.file == nil {
		return errNotOpened
	}

	flushErr := e.buf.Flush()
	if flushErr == nil {
		flushErr = e.file.Sync()
	}
	closeErr := e.file.Close()

	e.file, e.buf, e.enc = nil, nil, nil

	if flushErr != nil {
		return fmt.Errorf("flushing export file %s: %w", e.Path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing export file %s: %w", e.Path, closeErr)
	}

	return nil
}
