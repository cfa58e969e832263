package textsource

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts the embedded text layer of a PDF in-process. Labels with
// a real text layer resolve here without shelling out.
func pdfText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	pages := r.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return "", pages, fmt.Errorf("page %d text: %w", i, err)
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				if line.Len() > 0 {
					line.WriteString(" ")
				}
				line.WriteString(word.S)
			}
			b.WriteString(line.String())
			b.WriteString("\n")
		}
	}
	return b.String(), pages, nil
}
