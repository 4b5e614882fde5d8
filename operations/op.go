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

// operation holds state shared by all operations.
type operation struct {
	Multiplier int
}

// count returns how many times an operation should run.
func (op *operation) count(multiplier int) int {
	if op.Multiplier > 0 {
		return op.Multiplier
	}
	if multiplier > 0 {
		return multiplier
	}
	return 1
}

// repeat calls f n times.
func repeat(n int, b gott.Buffer, f func(b gott.Buffer)) {
	for i := 0; i < n; i++ {
		f(b)
	}
}
