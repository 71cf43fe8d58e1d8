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

package main

import (
	"github.com/cybrota/courseplanner/catalog"
	"github.com/willf/bloom"
)

const prerequisiteFalsePositiveRate = 0.01

// unresolvedPrerequisites reports every prerequisite reference that names no
// loaded course. The bloom filter rules out most misses without touching the
// tree; a positive is confirmed with a tree search.
func unresolvedPrerequisites(records []Record, tree *catalog.Tree) []Diagnostic {
	if len(records) == 0 {
		return nil
	}

	known := bloom.NewWithEstimates(uint(len(records)), prerequisiteFalsePositiveRate)
	for _, r := range records {
		known.AddString(r.ID)
	}

	var diagnostics []Diagnostic
	for _, r := range records {
		for _, ref := range r.Prerequisites {
			if known.TestString(ref) {
				if _, ok := tree.Search(ref); ok {
					continue
				}
			}
			diagnostics = append(diagnostics, Diagnostic{
				Line:   r.Line,
				Kind:   DiagnosticUnresolved,
				Course: r.ID,
				Ref:    ref,
			})
		}
	}
	return diagnostics
}
