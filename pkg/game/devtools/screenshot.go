package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mazeworks/pkg/engine/world"
)

// cellClass maps each state to its CSS class in the screenshot page
var cellClass = map[world.CellState]string{
	world.Wall:         "wall",
	world.Passage:      "passage",
	world.Start:        "start",
	world.End:          "end",
	world.Visited:      "visited",
	world.Frontier:     "frontier",
	world.SolutionPath: "path",
}

// RenderScreenshotHTML renders the grid as a standalone HTML page
func RenderScreenshotHTML(src Source) string {
	grid := src.Grid()

	var html strings.Builder
	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row { white-space: pre; line-height: 1; font-size: 16px; }
        .map-row span { display: inline-block; width: 1.2em; height: 1.2em; }
        .wall { background-color: #3c3c50; }
        .passage { background-color: #f0f0f0; }
        .start { background-color: #00c800; }
        .end { background-color: #dc0000; }
        .visited { background-color: #00b4dc; }
        .frontier { background-color: #ffd700; }
        .path { background-color: #c800c8; }
        .footer { margin-top: 10px; color: #888; }
    </style>
</head>
<body>
`)

	html.WriteString(fmt.Sprintf(`    <div class="header">Maze %dx%d, seed %d</div>`+"\n", grid.Rows(), grid.Cols(), src.Seed()))
	html.WriteString(`    <div class="map-container">` + "\n")
	for _, cells := range grid.Snapshot() {
		html.WriteString(`        <div class="map-row">`)
		for _, s := range cells {
			html.WriteString(fmt.Sprintf(`<span class="%s"></span>`, cellClass[s]))
		}
		html.WriteString("</div>\n")
	}
	html.WriteString(`    </div>` + "\n")

	if path := src.Path(); len(path) > 0 {
		html.WriteString(fmt.Sprintf(`    <div class="footer">Path length: %d</div>`+"\n", len(path)-1))
	}

	html.WriteString(`</body>
</html>
`)
	return html.String()
}

// SaveScreenshotHTML saves the current grid as an HTML file in dir
func SaveScreenshotHTML(dir string, src Source, now time.Time) (string, error) {
	if src.Grid() == nil {
		return "", fmt.Errorf("no grid")
	}
	if dir == "" {
		dir = "."
	}
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", now.Format("20060102-150405")))
	if err := os.WriteFile(filename, []byte(RenderScreenshotHTML(src)), 0644); err != nil {
		return "", err
	}
	return filename, nil
}
