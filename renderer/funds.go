package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/yy2792/rqdliq"
)

// FundsMarkdown lists the redemption terms of the funds, in the given order.
func FundsMarkdown(names []string, funds map[string]*rqdliq.Fund) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Funds")
	table := md.TableSet{
		Header: []string{"Fund", "Frequency", "Settlement", "Gate", "Lock-up"},
	}
	for _, name := range names {
		f, ok := funds[name]
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, []string{
			f.Name(),
			f.Frequency().Name(),
			fmt.Sprintf("%dd", f.SettlementLagDays()),
			f.Gate().String(),
			f.Lockup().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
