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
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/cybrota/courseplanner/catalog"
)

func TestFormatCourseDetail(t *testing.T) {
	tests := []struct {
		Name     string
		Detail   *CourseDetail
		Expected string
	}{
		{
			Name:     "No Prerequisites",
			Detail:   &CourseDetail{Course: catalog.Course{ID: "CS101", Title: "Intro to CS"}},
			Expected: "CS101: Intro to CS\nNo prerequisites\n",
		},
		{
			Name: "Resolved And Missing",
			Detail: &CourseDetail{
				Course: catalog.Course{ID: "CS301", Title: "Algorithms", Prerequisites: []string{"CS201", "CS999"}},
				Prerequisites: []Prerequisite{
					{ID: "CS201", Title: "Data Structures", Found: true},
					{ID: "CS999"},
				},
			},
			Expected: "CS301: Algorithms\nPrerequisites:\n  CS201: Data Structures\n  CS999 (title not found)\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			if got := FormatCourseDetail(tc.Detail); got != tc.Expected {
				t.Errorf("FormatCourseDetail() = %q; want %q", got, tc.Expected)
			}
		})
	}
}

func TestWriteCourseList(t *testing.T) {
	list := []catalog.Course{
		{ID: "CS101", Title: "Intro to CS"},
		{ID: "CS201", Title: "Data Structures"},
	}
	var buf bytes.Buffer
	n, err := WriteCourseList(&buf, slices.Values(list))
	if err != nil {
		t.Fatalf("WriteCourseList failed: %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d lines; want 2", n)
	}
	want := "CS101: Intro to CS\nCS201: Data Structures\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
}

func TestCourseDetailMarkdown(t *testing.T) {
	md := CourseDetailMarkdown(&CourseDetail{
		Course:        catalog.Course{ID: "CS201", Title: "Data Structures", Prerequisites: []string{"CS999"}},
		Prerequisites: []Prerequisite{{ID: "CS999"}},
	})
	for _, want := range []string{"# CS201", "**Title:** Data Structures", "## Prerequisites", "**CS999** (title not found)"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
