package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	"github.com/yy2792/rqdliq"
	"github.com/yy2792/rqdliq/date"
)

// ProjectionsMarkdown renders one table per fund with a line per tranche flow.
func ProjectionsMarkdown(decision date.Date, rows []rqdliq.ProjectionRow, settle bool, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	kind := "Redemptions"
	if settle {
		kind = "Settlements"
	}
	doc.H1(fmt.Sprintf("%s projected on %s", kind, decision))
	if len(rows) == 0 {
		doc.PlainText("No tranche in the portfolio.")
		return doc.String()
	}

	var table *md.TableSet
	flush := func() {
		if table != nil {
			doc.Table(*table)
		}
	}
	fund := ""
	for _, r := range rows {
		if table == nil || r.Fund != fund {
			flush()
			fund = r.Fund
			doc.H2(fund)
			table = &md.TableSet{
				Header: []string{"Tranche", "Date", "Amount", "Days"},
			}
		}
		if len(r.Projection) == 0 {
			table.Rows = append(table.Rows, []string{r.ID, "-", Amount(decimal.Zero, currency), "-"})
			continue
		}
		for _, f := range r.Projection {
			table.Rows = append(table.Rows, []string{
				r.ID,
				f.Date.String(),
				Amount(f.Amount, currency),
				fmt.Sprintf("%d", decision.DaysUntil(f.Date)),
			})
		}
	}
	flush()
	return doc.String()
}
