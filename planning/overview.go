package planning

import (
	"sort"
	"strconv"
	"strings"
)

// Overview describes how to reshape the raw planning rows into a week overview
// grid of persons against projects.
type Overview struct {
	WeekRow       int // row holding the week numbers; project rows start below the first blank row after it
	TypeColumn    int // project type column
	ProjectColumn int // project name column
	PersonColumn  int // person column
}

type project struct {
	kind string
	name string
}

type assignment struct {
	project project
	person  string
	hours   int
}

// SkippedRow records a planning row that was dropped because its hours value
// was not a whole number.
type SkippedRow struct {
	Row     int
	Project string
	Hours   string
}

// Build reshapes the source grid into the week overview: one row per person,
// one column per project, cells holding the planned hours for the week in
// column 'hoursCol', plus a per-person 'Total' column. The first two rows of
// the returned grid hold the project types and project names.
func (o Overview) Build(grid Grid, hoursCol int) (Grid, []SkippedRow, error) {
	start, err := o.firstProjectRow(grid)
	if err != nil {
		return nil, nil, err
	}

	assignments, skipped := o.assignments(grid, start, hoursCol)

	// ... projects in order of first appearance, persons sorted
	projects := []project{}
	seen := map[project]bool{}
	persons := []string{}
	hours := map[string]map[project]int{}

	for _, a := range assignments {
		if !seen[a.project] {
			seen[a.project] = true
			projects = append(projects, a.project)
		}

		if _, ok := hours[a.person]; !ok {
			persons = append(persons, a.person)
			hours[a.person] = map[project]int{}
		}

		hours[a.person][a.project] += a.hours
	}

	sort.Strings(persons)

	// ... header rows (project types, project names), then a row per person
	types := []string{""}
	names := []string{""}
	for _, p := range projects {
		types = append(types, p.kind)
		names = append(names, p.name)
	}
	types = append(types, "Total")
	names = append(names, "")

	overview := Grid{types, names}

	for _, person := range persons {
		row := make([]string, len(projects)+2)
		row[0] = person

		total := 0
		for i, p := range projects {
			if h, ok := hours[person][p]; ok {
				row[i+1] = strconv.Itoa(h)
				total += h
			}
		}

		row[len(row)-1] = strconv.Itoa(total)
		overview = append(overview, row)
	}

	return overview, skipped, nil
}

// firstProjectRow locates the first planning row - the row immediately below
// the first blank row after the week number row.
func (o Overview) firstProjectRow(grid Grid) (int, error) {
	for row := o.WeekRow + 1; row < grid.Rows(); row++ {
		if grid.rowIsEmpty(row) {
			return row + 1, nil
		}
	}

	return 0, Configurationf("no blank separator row below the week number row %d", o.WeekRow)
}

// assignments extracts the (project, person, hours) rows, forward filling the
// project type and name columns and dropping incomplete rows, zero hour rows
// and placeholder persons.
func (o Overview) assignments(grid Grid, start, hoursCol int) ([]assignment, []SkippedRow) {
	assignments := []assignment{}
	skipped := []SkippedRow{}

	kind := ""
	name := ""

	for row := start; row < grid.Rows(); row++ {
		if v := strings.TrimSpace(grid.Cell(row, o.TypeColumn)); v != "" {
			kind = v
		}

		if v := strings.TrimSpace(grid.Cell(row, o.ProjectColumn)); v != "" {
			name = v
		}

		person := strings.TrimSpace(grid.Cell(row, o.PersonColumn))
		value := strings.TrimSpace(grid.Cell(row, hoursCol))

		if kind == "" || name == "" || person == "" || value == "" {
			continue
		}

		if value == "0" || strings.HasPrefix(person, "?") {
			continue
		}

		hours, err := strconv.Atoi(value)
		if err != nil {
			skipped = append(skipped, SkippedRow{Row: row, Project: name, Hours: value})
			continue
		}

		assignments = append(assignments, assignment{
			project: project{kind: kind, name: name},
			person:  person,
			hours:   hours,
		})
	}

	return assignments, skipped
}
