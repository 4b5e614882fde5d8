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
	"io/fs"
	"os"

	"github.com/aymanbagabas/go-udiff"
)

// Diff returns a unified diff from the saved file to the buffer text. It is
// empty when the buffer matches the file. A file that does not exist yet
// diffs as empty.
func (e *Editor) Diff() (string, error) {
	name := e.Buffer.FileName()
	if name == "" {
		return "", ErrNoFileName
	}
	saved, err := os.ReadFile(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	text := e.Buffer.Text()
	if string(saved) == text {
		return "", nil
	}
	return udiff.Unified(name, name+" (buffer)", string(saved), text), nil
}
