// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import "iter"

type node struct {
	course      Course
	left, right *node
}

// Tree is a binary search tree of courses ordered by ID using plain byte-wise
// string comparison. No rebalancing happens, so the shape depends only on
// insertion order.
type Tree struct {
	root *node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: nil}
}

// Insert adds c to the tree. An ID that is not strictly less than a node's ID
// descends right, so a duplicate ID is stored as a second node below the
// first one. Search keeps returning the first-inserted course for that ID
// while All still yields both.
func (t *Tree) Insert(c Course) {
	newNode := &node{course: c}
	t.size++
	if t.root == nil {
		t.root = newNode
		return
	}
	insertNode(t.root, newNode)
}

func insertNode(current, newNode *node) {
	if newNode.course.ID < current.course.ID {
		if current.left == nil {
			current.left = newNode
			return
		}
		insertNode(current.left, newNode)
		return
	}
	if current.right == nil {
		current.right = newNode
		return
	}
	insertNode(current.right, newNode)
}

// Search returns the first course found with exactly the given ID.
// The comparison is case-sensitive.
func (t *Tree) Search(id string) (Course, bool) {
	return searchNode(t.root, id)
}

func searchNode(n *node, id string) (Course, bool) {
	if n == nil {
		return Course{}, false
	}
	if id == n.course.ID {
		return n.course, true
	}
	if id < n.course.ID {
		return searchNode(n.left, id)
	}
	return searchNode(n.right, id)
}

// All returns the courses in ascending ID order. The sequence can be ranged
// over any number of times; each range walks the tree again.
func (t *Tree) All() iter.Seq[Course] {
	return func(yield func(Course) bool) {
		inOrder(t.root, yield)
	}
}

// Walk calls fn for every course in ascending ID order until fn returns false.
func (t *Tree) Walk(fn func(Course) bool) {
	inOrder(t.root, fn)
}

func inOrder(n *node, visit func(Course) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, visit) && visit(n.course) && inOrder(n.right, visit)
}

// Prefix returns every course whose ID starts with prefix, in ascending order.
// An empty prefix returns the whole tree.
func (t *Tree) Prefix(prefix string) []Course {
	var results []Course
	prefixSearch(t.root, prefix, &results)
	return results
}

// prefixSearch only descends into subtrees that can still hold a match.
// IDs sharing a prefix form one contiguous run in key order.
func prefixSearch(n *node, prefix string, results *[]Course) {
	if n == nil {
		return
	}

	id := n.course.ID
	matches := len(id) >= len(prefix) && id[:len(prefix)] == prefix

	// Everything on the left is below id; worth a look only if id is not
	// already below the run.
	if id >= prefix {
		prefixSearch(n.left, prefix, results)
	}

	if matches {
		*results = append(*results, n.course)
	}

	// Everything on the right is at or above id; once id is past the run
	// nothing there can match.
	if id < prefix || matches {
		prefixSearch(n.right, prefix, results)
	}
}

// Reset drops every node. Calling it on an empty tree is a no-op.
func (t *Tree) Reset() {
	t.root = nil
	t.size = 0
}

// Len returns the number of nodes, counting shadowed duplicates.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}
