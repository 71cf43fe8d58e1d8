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
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/cybrota/courseplanner/catalog"
)

const titleNotFound = "(title not found)"

// FormatCourseLine renders the one-line listing form "ID: Title".
func FormatCourseLine(c catalog.Course) string {
	return fmt.Sprintf("%s: %s", c.ID, c.Title)
}

// WriteCourseList writes one line per course and returns how many were written.
func WriteCourseList(w io.Writer, courses iter.Seq[catalog.Course]) (int, error) {
	n := 0
	for c := range courses {
		if _, err := fmt.Fprintln(w, FormatCourseLine(c)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// FormatCourseDetail renders a course with its resolved prerequisites.
func FormatCourseDetail(d *CourseDetail) string {
	var b strings.Builder
	b.WriteString(FormatCourseLine(d.Course))
	b.WriteString("\n")

	if len(d.Prerequisites) == 0 {
		b.WriteString("No prerequisites\n")
		return b.String()
	}

	b.WriteString("Prerequisites:\n")
	for _, p := range d.Prerequisites {
		if p.Found {
			fmt.Fprintf(&b, "  %s: %s\n", p.ID, p.Title)
		} else {
			fmt.Fprintf(&b, "  %s %s\n", p.ID, titleNotFound)
		}
	}
	return b.String()
}

// CourseDetailMarkdown renders the same content as markdown for the browse view.
func CourseDetailMarkdown(d *CourseDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.ID)
	fmt.Fprintf(&b, "**Title:** %s\n\n", d.Title)

	if len(d.Prerequisites) == 0 {
		b.WriteString("_No prerequisites_\n")
		return b.String()
	}

	b.WriteString("## Prerequisites\n\n")
	for _, p := range d.Prerequisites {
		if p.Found {
			fmt.Fprintf(&b, "* **%s**: %s\n", p.ID, p.Title)
		} else {
			fmt.Fprintf(&b, "* **%s** %s\n", p.ID, titleNotFound)
		}
	}
	return b.String()
}
