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

// Package catalog holds the ordered course store: an unbalanced binary
// search tree keyed by course identifier.
//
// A Tree is not safe for concurrent use.
package catalog

// Course is one catalog entry. ID is the ordering key; Title and
// Prerequisites are carried along and never compared.
type Course struct {
	ID            string
	Title         string
	Prerequisites []string // opaque course IDs, may name courses that were never loaded
}

// HasPrerequisites reports whether the course lists any prerequisite.
func (c Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}
