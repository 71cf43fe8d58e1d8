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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/courseplanner/catalog"
)

// Focus targets cycled with tab
const (
	focusFilter = iota
	focusCourses
	focusDetail
	focusCount
)

// browseModel is the Bubble Tea state for the catalog browser
type browseModel struct {
	ready bool

	filterInput    textinput.Model
	courseList     list.Model
	detailViewport viewport.Model

	planner *Planner

	focusIndex int
	courses    []catalog.Course
	lastFilter string
	status     string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the browser
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Status        lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
	}
}

// courseItem is one row of the course list
type courseItem struct {
	course catalog.Course
}

func (i courseItem) FilterValue() string { return i.course.ID }
func (i courseItem) Title() string       { return i.course.ID }
func (i courseItem) Description() string {
	switch n := len(i.course.Prerequisites); n {
	case 0:
		return i.course.Title
	case 1:
		return fmt.Sprintf("%s · 1 prerequisite", i.course.Title)
	default:
		return fmt.Sprintf("%s · %d prerequisites", i.course.Title, n)
	}
}

func courseItems(courses []catalog.Course) []list.Item {
	items := make([]list.Item, len(courses))
	for i, c := range courses {
		items[i] = courseItem{course: c}
	}
	return items
}

// newBrowseModel builds the browser over a loaded planner. renderer may be
// nil, in which case details are shown as plain text.
func newBrowseModel(planner *Planner, renderer *glamour.TermRenderer) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Filter by course number prefix..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	courseList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	courseList.SetShowTitle(false)
	courseList.SetShowHelp(false)
	courseList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a course to view its prerequisites...")

	m := browseModel{
		filterInput:     ti,
		courseList:      courseList,
		detailViewport:  detailViewport,
		planner:         planner,
		focusIndex:      focusFilter,
		styles:          NewStyles(),
		glamourRenderer: renderer,
	}
	m.refreshCourses("")
	return m
}

// Init is called when the program starts
func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % focusCount
			if m.focusIndex == focusFilter {
				m.filterInput.Focus()
			} else {
				m.filterInput.Blur()
			}
			return m, nil
		case "ctrl+y":
			m.copySelectedDetail()
			return m, nil
		case "ctrl+r":
			if m.focusIndex == focusFilter {
				m.filterInput.SetValue("")
			}
		case "up", "k":
			if m.focusIndex == focusCourses {
				m.courseList.CursorUp()
				m.updateDetail()
				return m, nil
			} else if m.focusIndex == focusDetail {
				m.detailViewport.LineUp(1)
				return m, nil
			}
		case "down", "j":
			if m.focusIndex == focusCourses {
				m.courseList.CursorDown()
				m.updateDetail()
				return m, nil
			} else if m.focusIndex == focusDetail {
				m.detailViewport.LineDown(1)
				return m, nil
			}
		}

		switch m.focusIndex {
		case focusFilter:
			m.filterInput, cmd = m.filterInput.Update(msg)
		case focusCourses:
			m.courseList, cmd = m.courseList.Update(msg)
			m.updateDetail()
		default:
			m.detailViewport, cmd = m.detailViewport.Update(msg)
		}
	}

	if query := m.filterInput.Value(); query != m.lastFilter {
		m.refreshCourses(query)
	}

	return m, cmd
}

// refreshCourses lists the courses matching query and shows the first one.
func (m *browseModel) refreshCourses(query string) {
	m.lastFilter = query

	courses, err := m.planner.ListPrefix(query)
	if err != nil {
		m.courses = nil
		m.courseList.SetItems(nil)
		m.detailViewport.SetContent(err.Error())
		return
	}

	m.courses = courses
	m.courseList.SetItems(courseItems(courses))
	m.courseList.Select(0)

	if len(courses) == 0 {
		m.detailViewport.SetContent(fmt.Sprintf("No courses start with %q.", query))
		return
	}
	m.updateDetail()
}

func (m *browseModel) selectedCourse() (catalog.Course, bool) {
	idx := m.courseList.Index()
	if idx < 0 || idx >= len(m.courses) {
		return catalog.Course{}, false
	}
	return m.courses[idx], true
}

// updateDetail shows the selected course in the detail viewport
func (m *browseModel) updateDetail() {
	course, ok := m.selectedCourse()
	if !ok {
		return
	}

	detail := m.planner.Resolve(course)

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(CourseDetailMarkdown(detail)); err == nil {
			m.detailViewport.SetContent(rendered)
			return
		}
	}
	m.detailViewport.SetContent(FormatCourseDetail(detail))
}

func (m *browseModel) copySelectedDetail() {
	course, ok := m.selectedCourse()
	if !ok {
		return
	}
	page := FormatCourseDetail(m.planner.Resolve(course))
	if err := clipboard.WriteAll(page); err != nil {
		m.status = fmt.Sprintf("Failed to copy: %v", err)
		return
	}
	m.status = fmt.Sprintf("📋 Copied %s to clipboard", course.ID)
}

// updateLayout updates component dimensions
func (m *browseModel) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.filterInput.Width = leftWidth - 4
	m.courseList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = inputHeight + listHeight
}

// View renders the UI
func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(focus int, title string, width, height int, content string) string {
		style := m.styles.BorderBlurred
		if m.focusIndex == focus {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-4).Render(title),
				content,
			))
	}

	inputBox := box(focusFilter, " 🔍 Filter Courses", leftWidth, inputHeight, m.filterInput.View())
	listBox := box(focusCourses, fmt.Sprintf(" 📚 Courses (%d)", len(m.courses)), leftWidth, listHeight, m.courseList.View())
	detailBox := box(focusDetail, " 📄 Course Information", rightWidth, inputHeight+listHeight+2, m.detailViewport.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		detailBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

// renderHelp renders the key help footer
func (m browseModel) renderHelp() string {
	keys := []string{"tab", "↑/↓", "ctrl+r", "ctrl+y", "esc"}
	descs := []string{"switch focus", "select course", "clear filter", "copy details", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	footer := strings.Join(helpEntries, " • ")
	if m.status != "" {
		footer += "  " + m.styles.Status.Render(m.status)
	}
	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(footer)
}

// runBrowseApp starts the Bubble Tea browser
func runBrowseApp(planner *Planner) error {
	glamourRenderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		glamourRenderer = nil
	}

	program := tea.NewProgram(
		newBrowseModel(planner, glamourRenderer),
		tea.WithAltScreen(),
	)

	_, err = program.Run()
	return err
}
