package render

import (
	"fmt"
	"html/template"
	"io"
)

const tmplGrid = `{{if not .}}<p>No data</p>
{{else}}<table>
{{range .}}<tr>{{range .}}<td class="{{.}}"></td>{{end}}</tr>
{{end}}</table>
{{end}}`

var gridTemplate = template.Must(template.New("grid").Parse(tmplGrid))

// HTMLTable writes the level grid as an HTML table, or a "No data" paragraph
// when there are no heights.
func HTMLTable(w io.Writer, heights, waterAt []int) error {
	var rows [][]Cell
	if len(heights) > 0 {
		rows = Levels(heights, waterAt)
		if len(rows) == 0 {
			// All bars are zero height: still a table, just without rows.
			if _, err := io.WriteString(w, "<table>\n</table>\n"); err != nil {
				return fmt.Errorf("write grid table: %w", err)
			}
			return nil
		}
	}
	if err := gridTemplate.Execute(w, rows); err != nil {
		return fmt.Errorf("write grid table: %w", err)
	}
	return nil
}
