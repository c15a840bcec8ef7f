// Package export writes a generated week planning to local files.
package export

import (
	"encoding/csv"
	"io"

	"github.com/planningtools/planning-sheets/planning"
)

// ToTSV writes the grid as tab separated values.
func ToTSV(w io.Writer, grid planning.Grid) error {
	out := csv.NewWriter(w)
	out.Comma = '\t'

	for _, row := range grid {
		if err := out.Write(row); err != nil {
			return err
		}
	}

	out.Flush()

	return out.Error()
}
