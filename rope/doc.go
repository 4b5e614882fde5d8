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

// Package rope implements a persistent rope: an immutable binary tree of
// text fragments. Leaves hold text; internal nodes hold two children and
// the character count of their left subtree. Every edit builds new nodes
// and returns a new root, so older roots stay valid and can be kept as
// snapshots for undo.
//
// All offsets are counted in characters (Unicode code points), never in
// bytes. A nil *Node is a valid, empty rope.
package rope
