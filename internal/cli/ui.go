// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hackadmin/hackadmin/internal/authz"
)

// Theme colors for terminal UI rendering.
var (
	Purple = lipgloss.Color("99")
	Gray   = lipgloss.Color("245")
	White  = lipgloss.Color("15")
	Teal   = lipgloss.Color("#06ffa5")
)

// Reusable inline styles for compact key-value output.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	valueStyle = lipgloss.NewStyle().Foreground(Teal)

	// DimStyle is a muted style for secondary text.
	DimStyle = lipgloss.NewStyle().Foreground(Gray)
)

// Section represents a header with its corresponding rows.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// compactMaxColWidth is the maximum column width before truncation.
const compactMaxColWidth = 50

// PrintCompactTable renders a compact column-aligned table (kubectl-style).
// Headers are uppercase purple, data rows alternate teal and white, with a
// 2-space indent. Long values are truncated with an ellipsis.
func PrintCompactTable(
	sections []Section,
) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(Purple)
	evenStyle := lipgloss.NewStyle().Foreground(Teal)
	oddStyle := lipgloss.NewStyle().Foreground(White)

	const colGap = 2

	for _, section := range sections {
		if section.Title != "" {
			fmt.Printf("\n  %s:\n", headerStyle.Render(section.Title))
		} else {
			fmt.Println()
		}

		widths := columnWidths(section)

		var hdr strings.Builder
		hdr.WriteString("  ")
		for i, h := range section.Headers {
			if i < len(section.Headers)-1 {
				hdr.WriteString(
					headerStyle.Render(fmt.Sprintf("%-*s", widths[i]+colGap, strings.ToUpper(h))),
				)
			} else {
				hdr.WriteString(headerStyle.Render(strings.ToUpper(h)))
			}
		}
		fmt.Println(hdr.String())

		for r, row := range section.Rows {
			rowStyle := evenStyle
			if r%2 != 0 {
				rowStyle = oddStyle
			}
			var line strings.Builder
			line.WriteString("  ")
			for i := range section.Headers {
				cell := ""
				if i < len(row) {
					cell = strings.Join(strings.Fields(row[i]), " ")
				}
				if len(cell) > widths[i] {
					cell = cell[:widths[i]-1] + "…"
				}
				if i < len(section.Headers)-1 {
					line.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", widths[i]+colGap, cell)))
				} else {
					line.WriteString(rowStyle.Render(cell))
				}
			}
			fmt.Println(line.String())
		}
	}
}

// columnWidths sizes each column to its widest cell, capped at
// compactMaxColWidth.
func columnWidths(
	section Section,
) []int {
	widths := make([]int, len(section.Headers))
	for i, h := range section.Headers {
		widths[i] = len(h)
	}
	for _, row := range section.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		if widths[i] > compactMaxColWidth {
			widths[i] = compactMaxColWidth
		}
	}

	return widths
}

// KVMinColWidth is the minimum visual width for each key-value column.
// A consistent minimum ensures columns align across consecutive PrintKV calls.
const KVMinColWidth = 20

// PrintKV prints labeled key-value pairs on a single indented line.
// Pairs are padded to equal column widths for alignment.
// Arguments alternate between labels and values: label1, val1, label2, val2, ...
func PrintKV(
	pairs ...string,
) {
	if len(pairs)%2 != 0 || len(pairs) == 0 {
		return
	}

	rendered := make([]string, 0, len(pairs)/2)
	maxWidth := KVMinColWidth
	for i := 0; i < len(pairs); i += 2 {
		pair := labelStyle.Render(pairs[i]+":") + " " + valueStyle.Render(pairs[i+1])
		rendered = append(rendered, pair)
		if w := lipgloss.Width(pair); w > maxWidth {
			maxWidth = w
		}
	}

	var line strings.Builder
	line.WriteString("  ")
	for i, pair := range rendered {
		line.WriteString(pair)
		if i < len(rendered)-1 {
			pad := maxWidth - lipgloss.Width(pair) + 4
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	fmt.Println(line.String())
}

// FormatList joins items with ", " or returns "None" for an empty list.
func FormatList(
	items []string,
) string {
	if len(items) == 0 {
		return "None"
	}

	return strings.Join(items, ", ")
}

// DisplayIdentity prints a resolved identity: the subject, the effective
// role, and whichever local records matched.
func DisplayIdentity(
	id *authz.Identity,
) {
	fmt.Println()
	PrintKV(
		"Subject", id.Subject,
		"Role", id.EffectiveRole().String(),
		"Kinds", FormatList(id.Kinds()),
	)

	var sections []Section
	if o := id.Organizer; o != nil {
		sections = append(sections, Section{
			Title:   "Organizer",
			Headers: []string{"ID", "NAME", "EMAIL", "PRIVILEGE"},
			Rows: [][]string{
				{o.ID, o.FirstName + " " + o.LastName, o.Email, string(o.Privilege)},
			},
		})
	}
	if u := id.User; u != nil {
		sections = append(sections, Section{
			Title:   "User",
			Headers: []string{"ID", "NAME", "EMAIL"},
			Rows: [][]string{
				{u.ID, u.FirstName + " " + u.LastName, u.Email},
			},
		})
	}

	PrintCompactTable(sections)
}

// DisplayRoles prints the role hierarchy in ascending rank order.
func DisplayRoles() {
	names := authz.AllowedRoles()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		role := authz.Role(name)
		rows = append(rows, []string{strconv.Itoa(role.Rank()), name})
	}

	PrintCompactTable([]Section{{
		Title:   "Roles",
		Headers: []string{"RANK", "ROLE"},
		Rows:    rows,
	}})
}
