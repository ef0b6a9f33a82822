package export

import (
	"encoding/json"
	"io"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

func writeJSON(w io.Writer, report domain.GradeReport) error {
	rows := report.Rows
	if rows == nil {
		rows = []domain.GradeRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
