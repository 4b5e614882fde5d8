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

// Insert inserts text at the cursor.
type Insert struct {
	operation
	Text string
}

func (op *Insert) Perform(b gott.Buffer, multiplier int) {
	repeat(op.count(multiplier), b, func(b gott.Buffer) {
		b.InsertAtCursor(op.Text)
	})
}

// NewlineAbove opens a blank line above the cursor.
type NewlineAbove struct {
	operation
}

func (op *NewlineAbove) Perform(b gott.Buffer, multiplier int) {
	repeat(op.count(multiplier), b, gott.Buffer.InsertNewlineAbove)
}

// NewlineBelow opens a blank line below the cursor.
type NewlineBelow struct {
	operation
}

func (op *NewlineBelow) Perform(b gott.Buffer, multiplier int) {
	repeat(op.count(multiplier), b, gott.Buffer.InsertNewlineBelow)
}
