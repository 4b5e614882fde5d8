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

// Package history keeps undo and redo stacks of rope snapshots. Because
// ropes are immutable, a snapshot is just a root reference and saving or
// restoring one costs O(1).
package history

import (
	"github.com/gammazero/deque"

	"github.com/timburks/ropey/rope"
)

// DefaultLimit is the number of undo entries kept when no limit is given.
const DefaultLimit = 1000

// A History holds the snapshots of a single buffer.
type History struct {
	undo  deque.Deque[*rope.Node]
	redo  deque.Deque[*rope.Node]
	limit int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Snapshot records root as the state to return to on the next undo.
// The oldest entry is dropped once the limit is exceeded, and any redo
// entries are discarded.
func (h *History) Snapshot(root *rope.Node) {
	h.undo.PushBack(root)
	for h.undo.Len() > h.limit {
		h.undo.PopFront()
	}
	h.redo.Clear()
}

// Undo pops the most recent snapshot and saves current for redo.
// It returns false when there is nothing to undo.
func (h *History) Undo(current *rope.Node) (*rope.Node, bool) {
	if h.undo.Len() == 0 {
		return current, false
	}
	previous := h.undo.PopBack()
	h.redo.PushBack(current)
	return previous, true
}

// Redo pops the most recently undone state and saves current for undo.
// It returns false when there is nothing to redo.
func (h *History) Redo(current *rope.Node) (*rope.Node, bool) {
	if h.redo.Len() == 0 {
		return current, false
	}
	next := h.redo.PopBack()
	h.undo.PushBack(current)
	for h.undo.Len() > h.limit {
		h.undo.PopFront()
	}
	return next, true
}

func (h *History) CanUndo() bool {
	return h.undo.Len() > 0
}

func (h *History) CanRedo() bool {
	return h.redo.Len() > 0
}

func (h *History) UndoDepth() int {
	return h.undo.Len()
}

func (h *History) RedoDepth() int {
	return h.redo.Len()
}

func (h *History) Limit() int {
	return h.limit
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.undo.Clear()
	h.redo.Clear()
}
