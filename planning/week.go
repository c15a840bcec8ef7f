package planning

import (
	"strconv"
	"strings"
	"time"
)

// Selection modes for locating the current week's block of columns in the
// source sheet.
const (
	ModeAnchor = "anchor"
	ModeLookup = "lookup"
)

// Selector locates the block of source columns for the week containing the run
// date.
type Selector struct {
	Mode      string    // 'anchor' or 'lookup'
	Anchor    time.Time // date of the first week block (anchor mode)
	Stride    int       // columns per week block
	Weeks     int       // number of week blocks in the sheet (0 for 'unbounded')
	Lead      int       // columns before the first week block
	LookupRow int       // row holding ISO week numbers (lookup mode)
}

// Block identifies the selected week columns within the source grid.
type Block struct {
	Week   int // ISO week number of the run date
	Offset int // week blocks between the anchor date and the run date
	Start  int // first column of the block
	Width  int // number of columns in the block
}

// WeekOffset returns the number of whole weeks elapsed between the anchor date
// and 'today'. The result is negative if 'today' precedes the anchor. Both
// arguments are truncated to dates - time of day and timezone offsets within a
// day are ignored.
func WeekOffset(today, anchor time.Time) int {
	days := daysBetween(anchor, today)
	if days < 0 {
		return -((-days + 6) / 7)
	}

	return days / 7
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(t.Sub(f).Hours() / 24)
}

// Select resolves the week block for 'today' against the source grid. Returns
// a ConfigurationError if the run date falls outside the configured planning
// window or the sheet does not contain the computed columns.
func (s Selector) Select(today time.Time, grid Grid) (Block, error) {
	_, week := today.ISOWeek()

	block := Block{
		Week:  week,
		Width: s.Stride,
	}

	switch s.Mode {
	case ModeAnchor, "":
		offset := WeekOffset(today, s.Anchor)
		if offset < 0 {
			return Block{}, Configurationf("run date %v is %d week(s) before the anchor date %v",
				today.Format("2006-01-02"), -offset, s.Anchor.Format("2006-01-02"))
		}

		if s.Weeks > 0 && offset >= s.Weeks {
			return Block{}, Configurationf("run date %v is outside the planning window (week offset %d, %d weeks configured)",
				today.Format("2006-01-02"), offset, s.Weeks)
		}

		block.Offset = offset
		block.Start = s.Lead + offset*s.Stride

	case ModeLookup:
		start, err := s.lookup(week, grid)
		if err != nil {
			return Block{}, err
		}

		block.Offset = (start - s.Lead) / s.Stride
		block.Start = start

	default:
		return Block{}, Configurationf("invalid week selection mode '%s'", s.Mode)
	}

	if block.Start+block.Width > grid.Columns() {
		return Block{}, Configurationf("source sheet has %d columns - week %d needs columns %d-%d",
			grid.Columns(), week, block.Start+1, block.Start+block.Width)
	}

	return block, nil
}

// lookup scans the configured row for the cell matching the ISO week number.
func (s Selector) lookup(week int, grid Grid) (int, error) {
	if s.LookupRow >= grid.Rows() {
		return 0, Configurationf("source sheet has no week number row at index %d", s.LookupRow)
	}

	for col := s.Lead; col < grid.Columns(); col++ {
		v := strings.TrimSpace(grid.Cell(s.LookupRow, col))
		if n, err := strconv.Atoi(v); err == nil && n == week {
			return col, nil
		}
	}

	return 0, Configurationf("week %d not found in week number row %d", week, s.LookupRow)
}
