//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"errors"
	"os"

	gott "github.com/timburks/ropey/types"
)

// ErrNoFileName is returned when saving a buffer that has never been named.
var ErrNoFileName = errors.New("buffer has no file name")

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Buffer   *Buffer        // active buffer being edited
	options  Options        // used for buffers the editor creates
	previous gott.Operation // last operation performed, available to repeat
}

func NewEditor(options Options) *Editor {
	e := &Editor{options: options}
	e.Buffer = NewBuffer(options)
	return e
}

func (e *Editor) GetBuffer() gott.Buffer {
	return e.Buffer
}

// ReadFile loads the file at path into a fresh buffer. Errors from the
// file system are returned unchanged and leave the current buffer alone.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	buffer := NewBuffer(e.options)
	buffer.Load(string(b))
	buffer.SetFileName(path)
	e.Buffer = buffer
	return nil
}

// WriteFile writes the buffer text to path exactly as it is.
func (e *Editor) WriteFile(path string) error {
	err := os.WriteFile(path, []byte(e.Buffer.Text()), 0666)
	if err != nil {
		return err
	}
	if path == e.Buffer.FileName() {
		e.Buffer.markSaved()
	}
	return nil
}

// Save writes the buffer to its file.
func (e *Editor) Save() error {
	if e.Buffer.FileName() == "" {
		return ErrNoFileName
	}
	return e.WriteFile(e.Buffer.FileName())
}

// SaveAs names the buffer and writes it.
func (e *Editor) SaveAs(path string) error {
	e.Buffer.SetFileName(path)
	return e.Save()
}

func (e *Editor) Perform(op gott.Operation, multiplier int) {
	op.Perform(e.Buffer, multiplier)
	// save the operation for repeats
	e.previous = op
}

func (e *Editor) Repeat() {
	if e.previous != nil {
		e.previous.Perform(e.Buffer, 1)
	}
}
