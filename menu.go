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
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cybrota/courseplanner/catalog"
	"github.com/mattn/go-shellwords"
)

const menuText = `
===== Course Planner =====
 1. Load Data Structure (from file)
 2. Print Course List (Alphanumeric)
 3. Print Course Information (Title & Prereqs)
 9. Exit
Select an option: `

const (
	menuLoad = 1
	menuList = 2
	menuShow = 3
	menuExit = 9
)

// Menu is the numbered prompt loop. Each option may take its argument on the
// same line, e.g. `1 "fall courses.csv"` or `3 csci200`; otherwise the menu
// asks for it.
type Menu struct {
	planner     *Planner
	in          *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	suggestions int
}

func NewMenu(planner *Planner, in io.Reader, out, errOut io.Writer) *Menu {
	return &Menu{
		planner:     planner,
		in:          bufio.NewReader(in),
		out:         out,
		errOut:      errOut,
		suggestions: planner.config.Display.Suggestions,
	}
}

// Run shows the menu until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, menuText)

		line, err := m.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}

		args, err := splitMenuLine(line)
		if err != nil || len(args) == 0 {
			m.fail("Invalid option. Please choose 1, 2, 3, or 9.")
			continue
		}

		choice, err := strconv.Atoi(args[0])
		if err != nil {
			choice = 0
		}

		switch choice {
		case menuLoad:
			m.load(args[1:])
		case menuList:
			m.list(args[1:])
		case menuShow:
			m.show(args[1:])
		case menuExit:
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			m.fail("Invalid option. Please choose 1, 2, 3, or 9.")
		}
	}
}

// splitMenuLine splits a menu line into the option and its arguments. Only
// lines with quotes get shell-style splitting, so an unquoted Windows path
// keeps its backslashes.
func splitMenuLine(line string) ([]string, error) {
	if strings.ContainsAny(line, `"'`) {
		return shellwords.Parse(line)
	}
	return strings.Fields(line), nil
}

// readLine returns the next line without its terminator. io.EOF is only
// returned when no characters were read.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) prompt(text string) string {
	fmt.Fprint(m.out, text)
	line, err := m.readLine()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (m *Menu) fail(msg string) {
	fmt.Fprintf(m.errOut, "%s%s%s\n", Error, msg, Reset)
}

func (m *Menu) load(args []string) {
	var path string
	if len(args) > 0 {
		path = strings.Join(args, " ")
	} else {
		path = unquote(m.prompt("Enter file path:\n"))
	}

	report, err := m.planner.Load(path)
	writeDiagnostics(m.errOut, report)

	switch {
	case errors.Is(err, ErrNoPath):
		m.fail("Error: No filename provided.")
	case errors.Is(err, ErrEmptyInput):
		m.fail("No valid course rows found.")
	case err != nil:
		m.fail(fmt.Sprintf("Error: %v", err))
		if m.planner.Loaded() {
			fmt.Fprintf(m.out, "Previous catalog from '%s' is still loaded.\n", m.planner.Source())
		}
	default:
		fmt.Fprintf(m.out, "%sLoaded %d course(s) from '%s'.%s\n", Info, report.Loaded, path, Reset)
	}
}

func (m *Menu) list(args []string) {
	if !m.planner.Loaded() {
		m.fail("Please load data first (Option 1).")
		return
	}

	fmt.Fprintln(m.out, "\n=== Course List (Alphanumeric) ===")
	if len(args) == 0 {
		WriteCourseList(m.out, m.planner.Courses())
		return
	}

	courses, err := m.planner.ListPrefix(args[0])
	if err != nil {
		m.fail(fmt.Sprintf("Error: %v", err))
		return
	}
	if n, _ := WriteCourseList(m.out, slices.Values(courses)); n == 0 {
		fmt.Fprintf(m.out, "No courses start with %q.\n", args[0])
	}
}

func (m *Menu) show(args []string) {
	if !m.planner.Loaded() {
		m.fail("Please load data first (Option 1).")
		return
	}

	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		id = m.prompt("Enter course number: ")
	}

	page, err := m.planner.Detail(id)
	switch {
	case errors.Is(err, ErrNoID):
		m.fail("Error: No course number entered.")
	case errors.Is(err, ErrCourseNotFound):
		fmt.Fprintln(m.out, "Course not found.")
		if similar := m.planner.Suggest(id, m.suggestions); len(similar) > 0 {
			fmt.Fprintf(m.out, "Did you mean: %s?\n", strings.Join(similar, ", "))
		}
	case err != nil:
		m.fail(fmt.Sprintf("Error: %v", err))
	default:
		fmt.Fprint(m.out, page)
	}
}

// writeDiagnostics prints load problems; report may be nil.
func writeDiagnostics(w io.Writer, report *LoadReport) {
	if report == nil {
		return
	}
	for _, d := range report.Diagnostics {
		switch d.Kind {
		case DiagnosticMalformed:
			fmt.Fprintf(w, "%sError (line %d): %s.%s\n", Error, d.Line, capitalize(d.Reason), Reset)
		default:
			fmt.Fprintf(w, "%sWarning: %s.%s\n", Warning, d.String(), Reset)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// unquote strips one pair of matching surrounding quotes, as pasted from a
// file manager.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// printCourses is shared by the list subcommand.
func printCourses(w io.Writer, courses []catalog.Course) {
	WriteCourseList(w, slices.Values(courses))
}
