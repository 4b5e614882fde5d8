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
package operations

import (
	gott "github.com/timburks/ropey/types"
)

// Backspace deletes Count characters before the cursor.
type Backspace struct {
	operation
	Count int
}

func (op *Backspace) Perform(b gott.Buffer, multiplier int) {
	count := op.Count
	if count <= 0 {
		count = 1
	}
	repeat(op.count(multiplier), b, func(b gott.Buffer) {
		b.DeleteAtCursor(count)
	})
}

// DeleteLine deletes the line under the cursor.
type DeleteLine struct {
	operation
}

func (op *DeleteLine) Perform(b gott.Buffer, multiplier int) {
	repeat(op.count(multiplier), b, gott.Buffer.DeleteCurrentLine)
}
