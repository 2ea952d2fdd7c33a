package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/uspp-raketa/vertexsim/pkg/compare"
)

// scoreTable renders a comparison report as a bordered table. Rows are the
// first graph's nodes, columns the second's; each row's best-match cell is
// highlighted. Scores are shown with three decimals; full precision lives
// only in the report.
func scoreTable(rep *compare.Report) string {
	if len(rep.Scores) == 0 {
		return ""
	}

	headers := make([]string, 0, len(rep.ColIDs)+1)
	headers = append(headers, "")
	for k, id := range rep.ColIDs {
		headers = append(headers, nodeHeader(id, rep.ColLabels, k))
	}

	rows := make([][]string, len(rep.Scores))
	for i, scores := range rep.Scores {
		row := make([]string, 0, len(scores)+1)
		row = append(row, nodeHeader(rep.RowIDs[i], rep.RowLabels, i))
		for _, v := range scores {
			row = append(row, fmt.Sprintf("%.3f", v))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow || col == 0:
				return StyleHeader.Padding(0, 1)
			case rep.BestMatch != nil && col-1 == rep.BestMatch[row]:
				return StyleHighlight.Padding(0, 1)
			default:
				return StyleValue.Padding(0, 1)
			}
		})

	return t.Render()
}

// nodeHeader formats one node's table header: its label when one exists,
// otherwise the node ID.
func nodeHeader(id int, labels []string, idx int) string {
	if idx < len(labels) && labels[idx] != "" {
		return labels[idx]
	}
	return strconv.Itoa(id)
}
