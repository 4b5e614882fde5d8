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
	"strings"
	"unicode/utf8"
)

// A Node is either a leaf holding a text fragment or an internal node
// holding two children. Nodes are never modified after construction.
type Node struct {
	left   *Node
	right  *Node
	weight int    // characters in the left subtree
	length int    // characters in the whole subtree
	size   int    // bytes in the whole subtree
	depth  int    // 0 for leaves
	leaves int    // number of leaves in the subtree
	text   string // leaf fragment
}

// NewLeaf returns a leaf holding text.
func NewLeaf(text string) *Node {
	n := utf8.RuneCountInString(text)
	return &Node{
		weight: n,
		length: n,
		size:   len(text),
		leaves: 1,
		text:   text,
	}
}

func newInternal(left, right *Node) *Node {
	return &Node{
		left:   left,
		right:  right,
		weight: left.length,
		length: left.length + right.length,
		size:   left.size + right.size,
		depth:  max(left.depth, right.depth) + 1,
		leaves: left.leaves + right.leaves,
	}
}

// IsLeaf reports whether n holds text rather than children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Weight returns the number of characters in the left subtree of an
// internal node, or the fragment length of a leaf.
func (n *Node) Weight() int {
	if n == nil {
		return 0
	}
	return n.weight
}

// Left returns the left child, nil for leaves.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, nil for leaves.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// String returns the full text of the subtree.
func (n *Node) String() string {
	return Flatten(n)
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		sb.WriteString(n.text)
		return
	}
	n.left.appendTo(sb)
	n.right.appendTo(sb)
}

// byteOffset returns the byte offset of the i-th character of s.
// i is clamped to [0, characters in s].
func byteOffset(s string, i int) int {
	if i <= 0 {
		return 0
	}
	count := 0
	for b := range s {
		if count == i {
			return b
		}
		count++
	}
	return len(s)
}
