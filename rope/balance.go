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
	"math/bits"
	"strings"
)

// DefaultMaxLeaf is the fragment size, in characters, that Rebalance merges
// small neighbouring leaves up to.
const DefaultMaxLeaf = 512

// depthSlack is how far a rope may exceed a perfectly balanced depth
// before NeedsRebalance reports it.
const depthSlack = 8

// Leaves returns the non-empty leaves of n in text order.
func Leaves(n *Node) []*Node {
	if n == nil {
		return nil
	}
	leaves := make([]*Node, 0, n.leaves)
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			if n.length > 0 {
				leaves = append(leaves, n)
			}
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(n)
	return leaves
}

// NeedsRebalance reports whether n is deep enough, relative to its leaf
// count, that Rebalance should be applied.
func NeedsRebalance(n *Node) bool {
	if n == nil {
		return false
	}
	return n.depth > 2*bits.Len(uint(n.leaves))+depthSlack
}

// Rebalance returns a balanced rope with the same text as n. Adjacent
// leaves shorter than maxLeaf characters are merged; longer leaves are
// reused as they are. n itself is left untouched.
func Rebalance(n *Node, maxLeaf int) *Node {
	if maxLeaf <= 0 {
		maxLeaf = DefaultMaxLeaf
	}
	leaves := mergeLeaves(Leaves(n), maxLeaf)
	if len(leaves) == 0 {
		return NewLeaf("")
	}
	return build(leaves)
}

func mergeLeaves(leaves []*Node, maxLeaf int) []*Node {
	merged := make([]*Node, 0, len(leaves))
	var pending []*Node
	pendingLength := 0
	flush := func() {
		switch len(pending) {
		case 0:
		case 1:
			merged = append(merged, pending[0])
		default:
			var sb strings.Builder
			for _, leaf := range pending {
				sb.WriteString(leaf.text)
			}
			merged = append(merged, NewLeaf(sb.String()))
		}
		pending = pending[:0]
		pendingLength = 0
	}
	for _, leaf := range leaves {
		if leaf.length >= maxLeaf {
			flush()
			merged = append(merged, leaf)
			continue
		}
		if pendingLength+leaf.length > maxLeaf {
			flush()
		}
		pending = append(pending, leaf)
		pendingLength += leaf.length
	}
	flush()
	return merged
}

func build(leaves []*Node) *Node {
	if len(leaves) == 1 {
		return leaves[0]
	}
	mid := len(leaves) / 2
	return newInternal(build(leaves[:mid]), build(leaves[mid:]))
}
