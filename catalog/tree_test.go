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

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type treeTestCase struct {
	Name          string
	IDs           []string
	ExpectedOrder []string
}

func ids(courses []Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func collect(tree *Tree) []string {
	var out []string
	for c := range tree.All() {
		out = append(out, c.ID)
	}
	return out
}

func TestInsertAndInOrder(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Empty",
			IDs:           nil,
			ExpectedOrder: nil,
		},
		{
			Name:          "Single",
			IDs:           []string{"CS101"},
			ExpectedOrder: []string{"CS101"},
		},
		{
			Name:          "Ascending Input",
			IDs:           []string{"CS100", "CS200", "CS300", "CS400"},
			ExpectedOrder: []string{"CS100", "CS200", "CS300", "CS400"},
		},
		{
			Name:          "Descending Input",
			IDs:           []string{"MATH300", "MATH200", "CSCI100"},
			ExpectedOrder: []string{"CSCI100", "MATH200", "MATH300"},
		},
		{
			Name:          "Mixed Input",
			IDs:           []string{"CSCI300", "CSCI100", "MATH201", "CSCI200", "CSCI400", "CSCI101"},
			ExpectedOrder: []string{"CSCI100", "CSCI101", "CSCI200", "CSCI300", "CSCI400", "MATH201"},
		},
		{
			Name:          "Byte Order Not Natural Order",
			IDs:           []string{"CS20", "CS100", "cs1"},
			ExpectedOrder: []string{"CS100", "CS20", "cs1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New()
			for _, id := range tc.IDs {
				tree.Insert(Course{ID: id, Title: "title of " + id})
			}

			if diff := cmp.Diff(tc.ExpectedOrder, collect(tree)); diff != "" {
				t.Errorf("in-order mismatch (-want +got):\n%s", diff)
			}
			if tree.Len() != len(tc.IDs) {
				t.Errorf("Len() = %d; want %d", tree.Len(), len(tc.IDs))
			}
			for _, id := range tc.IDs {
				got, ok := tree.Search(id)
				if !ok {
					t.Fatalf("Search(%q) not found", id)
				}
				if got.ID != id || got.Title != "title of "+id {
					t.Errorf("Search(%q) = %+v", id, got)
				}
			}
		})
	}
}

func TestRandomInsertOrderIsSorted(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	var keys []string
	for i := 0; i < 500; i++ {
		keys = append(keys, randomID(r))
	}
	uniq := map[string]bool{}
	tree := New()
	for _, k := range keys {
		if uniq[k] {
			continue
		}
		uniq[k] = true
		tree.Insert(Course{ID: k})
	}

	want := make([]string, 0, len(uniq))
	for k := range uniq {
		want = append(want, k)
	}
	sort.Strings(want)

	if diff := cmp.Diff(want, collect(tree)); diff != "" {
		t.Errorf("in-order mismatch (-want +got):\n%s", diff)
	}
	for _, k := range want {
		if _, ok := tree.Search(k); !ok {
			t.Errorf("Search(%q) not found", k)
		}
	}
}

func randomID(r *rand.Rand) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 2+r.Intn(6))
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

func TestSearchMissing(t *testing.T) {
	tree := New()
	if _, ok := tree.Search("CS101"); ok {
		t.Error("Search on empty tree should not find anything")
	}
	if _, ok := tree.Search(""); ok {
		t.Error("Search for empty ID on empty tree should not find anything")
	}

	for _, id := range []string{"CS200", "CS100", "CS300"} {
		tree.Insert(Course{ID: id})
	}
	for _, id := range []string{"CS000", "CS150", "CS250", "CS999", "cs100", ""} {
		if got, ok := tree.Search(id); ok {
			t.Errorf("Search(%q) = %+v; want not found", id, got)
		}
	}
}

func TestDuplicateIDShadowsLaterInsert(t *testing.T) {
	tree := New()
	tree.Insert(Course{ID: "CS200", Title: "Original"})
	tree.Insert(Course{ID: "CS100", Title: "Intro"})
	tree.Insert(Course{ID: "CS200", Title: "Shadow"})
	tree.Insert(Course{ID: "CS300", Title: "Systems"})

	got, ok := tree.Search("CS200")
	if !ok {
		t.Fatal("Search(CS200) not found")
	}
	if got.Title != "Original" {
		t.Errorf("Search(CS200).Title = %q; want first-inserted %q", got.Title, "Original")
	}

	var titles []string
	for c := range tree.All() {
		titles = append(titles, c.Title)
	}
	want := []string{"Intro", "Original", "Shadow", "Systems"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("traversal mismatch (-want +got):\n%s", diff)
	}
	if tree.Len() != 4 {
		t.Errorf("Len() = %d; want 4", tree.Len())
	}
}

func TestReset(t *testing.T) {
	tree := New()
	tree.Reset()
	if tree.Len() != 0 || len(collect(tree)) != 0 {
		t.Fatal("Reset on an empty tree should leave it empty")
	}

	tree.Insert(Course{ID: "CS101"})
	tree.Insert(Course{ID: "CS201"})
	tree.Reset()
	tree.Reset()

	if tree.Len() != 0 {
		t.Errorf("Len() = %d after Reset; want 0", tree.Len())
	}
	if got := collect(tree); len(got) != 0 {
		t.Errorf("All() after Reset yielded %v", got)
	}
	if _, ok := tree.Search("CS101"); ok {
		t.Error("Search after Reset should not find anything")
	}
	if tree.Height() != 0 {
		t.Errorf("Height() = %d after Reset; want 0", tree.Height())
	}

	tree.Insert(Course{ID: "MATH201"})
	if diff := cmp.Diff([]string{"MATH201"}, collect(tree)); diff != "" {
		t.Errorf("reuse after Reset (-want +got):\n%s", diff)
	}
}

func TestAllIsRestartableAndStopsEarly(t *testing.T) {
	tree := New()
	for _, id := range []string{"C", "A", "B", "E", "D"} {
		tree.Insert(Course{ID: id})
	}

	first := collect(tree)
	second := collect(tree)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second traversal differs (-first +second):\n%s", diff)
	}

	var seen []string
	for c := range tree.All() {
		seen = append(seen, c.ID)
		if len(seen) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"A", "B"}, seen); diff != "" {
		t.Errorf("early break (-want +got):\n%s", diff)
	}

	seen = nil
	tree.Walk(func(c Course) bool {
		seen = append(seen, c.ID)
		return c.ID != "C"
	})
	if diff := cmp.Diff([]string{"A", "B", "C"}, seen); diff != "" {
		t.Errorf("Walk stop (-want +got):\n%s", diff)
	}
}

func TestHeightFollowsInsertionOrder(t *testing.T) {
	sorted := New()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		sorted.Insert(Course{ID: id})
	}
	if sorted.Height() != 5 {
		t.Errorf("sorted input Height() = %d; want 5", sorted.Height())
	}

	mixed := New()
	for _, id := range []string{"C", "B", "D", "A", "E"} {
		mixed.Insert(Course{ID: id})
	}
	if mixed.Height() != 3 {
		t.Errorf("mixed input Height() = %d; want 3", mixed.Height())
	}
}

func TestPrefix(t *testing.T) {
	tree := New()
	for _, id := range []string{"CSCI300", "MATH201", "CSCI100", "CS50", "CSCI200", "PHYS101", "CSCI101", "CSC"} {
		tree.Insert(Course{ID: id})
	}

	testCases := []struct {
		Name     string
		Prefix   string
		Expected []string
	}{
		{Name: "Department", Prefix: "CSCI", Expected: []string{"CSCI100", "CSCI101", "CSCI200", "CSCI300"}},
		{Name: "Shorter Prefix", Prefix: "CS", Expected: []string{"CS50", "CSC", "CSCI100", "CSCI101", "CSCI200", "CSCI300"}},
		{Name: "Exact Key", Prefix: "CSC", Expected: []string{"CSC", "CSCI100", "CSCI101", "CSCI200", "CSCI300"}},
		{Name: "Level", Prefix: "CSCI1", Expected: []string{"CSCI100", "CSCI101"}},
		{Name: "No Match", Prefix: "BIO", Expected: nil},
		{Name: "Past Every Key", Prefix: "ZZZ", Expected: nil},
		{Name: "Empty Prefix", Prefix: "", Expected: []string{"CS50", "CSC", "CSCI100", "CSCI101", "CSCI200", "CSCI300", "MATH201", "PHYS101"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := tree.Prefix(tc.Prefix)
			var gotIDs []string
			if len(got) > 0 {
				gotIDs = ids(got)
			}
			if diff := cmp.Diff(tc.Expected, gotIDs); diff != "" {
				t.Errorf("Prefix(%q) mismatch (-want +got):\n%s", tc.Prefix, diff)
			}
		})
	}
}

func TestCourseCarriesPrerequisites(t *testing.T) {
	tree := New()
	tree.Insert(Course{ID: "CS201", Title: "Data Structures", Prerequisites: []string{"CS101", "MATH101"}})

	got, ok := tree.Search("CS201")
	if !ok {
		t.Fatal("Search(CS201) not found")
	}
	if !got.HasPrerequisites() {
		t.Error("HasPrerequisites() = false; want true")
	}
	if diff := cmp.Diff([]string{"CS101", "MATH101"}, got.Prerequisites); diff != "" {
		t.Errorf("prerequisites mismatch (-want +got):\n%s", diff)
	}
	if (Course{ID: "CS101"}).HasPrerequisites() {
		t.Error("HasPrerequisites() on empty list = true; want false")
	}
}
