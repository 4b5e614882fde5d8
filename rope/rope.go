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
package rope

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned when a character offset lies outside the rope.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRange is returned when a range is reversed or exceeds the rope.
	ErrInvalidRange = errors.New("invalid range")
)

// Length returns the number of characters in n.
func Length(n *Node) int {
	if n == nil {
		return 0
	}
	return n.length
}

// Depth returns the height of n. Leaves and empty ropes have depth 0.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	return n.depth
}

// CharAt returns the character at offset i.
func CharAt(n *Node, i int) (rune, error) {
	if i < 0 || i >= Length(n) {
		return 0, fmt.Errorf("char at %d of %d: %w", i, Length(n), ErrIndexOutOfRange)
	}
	for !n.IsLeaf() {
		if i < n.weight {
			n = n.left
		} else {
			i -= n.weight
			n = n.right
		}
	}
	for _, c := range n.text[byteOffset(n.text, i):] {
		return c, nil
	}
	return 0, fmt.Errorf("char at %d: %w", i, ErrIndexOutOfRange)
}

// Split partitions n into the text before offset i and the text from i on.
// Offsets outside [0, Length(n)] are clamped. Splitting a nil rope
// returns two nil ropes.
func Split(n *Node, i int) (*Node, *Node) {
	if n == nil {
		return nil, nil
	}
	if n.IsLeaf() {
		i = min(max(i, 0), n.length)
		b := byteOffset(n.text, i)
		return NewLeaf(n.text[:b]), NewLeaf(n.text[b:])
	}
	if i < n.weight {
		left, right := Split(n.left, i)
		return left, Concatenate(right, n.right)
	}
	left, right := Split(n.right, i-n.weight)
	return Concatenate(n.left, left), right
}

// Concatenate joins left and right into one rope. The new internal node's
// weight is the length of left. Empty sides are dropped rather than stored
// as children, so an internal node always has two non-empty children.
func Concatenate(left, right *Node) *Node {
	if Length(left) == 0 {
		if right == nil {
			return left
		}
		return right
	}
	if Length(right) == 0 {
		return left
	}
	return newInternal(left, right)
}

// Insert returns a rope with text inserted at offset i.
func Insert(root *Node, i int, text string) (*Node, error) {
	if i < 0 || i > Length(root) {
		return root, fmt.Errorf("insert at %d of %d: %w", i, Length(root), ErrIndexOutOfRange)
	}
	if text == "" {
		return root, nil
	}
	left, right := Split(root, i)
	return Concatenate(Concatenate(left, NewLeaf(text)), right), nil
}

// Delete returns a rope without the characters in [start, end).
func Delete(root *Node, start, end int) (*Node, error) {
	if start < 0 || start > end || end > Length(root) {
		return root, fmt.Errorf("delete [%d, %d) of %d: %w", start, end, Length(root), ErrInvalidRange)
	}
	if start == end {
		return root, nil
	}
	left, rest := Split(root, start)
	_, right := Split(rest, end-start)
	return Concatenate(left, right), nil
}

// Flatten returns the text of n, leaves read left to right.
func Flatten(n *Node) string {
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return n.text
	}
	var sb strings.Builder
	sb.Grow(n.size)
	n.appendTo(&sb)
	return sb.String()
}
