package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/zeicheck/rules"
)

// ListRulesCmd prints every rule with its default severity.
type ListRulesCmd struct{}

func (cmd *ListRulesCmd) Run(ctx *kong.Context, globals *Globals) error {
	styles := globals.Styles(ctx.Stdout)
	all := rules.Default().All()

	idWidth := 0
	for _, r := range all {
		idWidth = max(idWidth, runewidth.StringWidth(r.ID))
	}

	var buf strings.Builder
	buf.WriteString("\n")
	buf.WriteString(styles.Keyword(fmt.Sprintf("zeicheck ルール一覧 (%d 件)", len(all))))
	buf.WriteString("\n\n")

	for _, r := range all {
		sev := string(r.Severity)
		fmt.Fprintf(&buf, "  %s  %s  %s\n",
			runewidth.FillRight(r.ID, idWidth),
			styles.Severity(sev, sev)+strings.Repeat(" ", max(0, len("warning")-len(sev))),
			r.Name,
		)
	}
	buf.WriteString("\n")

	_, err := fmt.Fprint(ctx.Stdout, buf.String())
	return err
}

// ExplainCmd prints the details of one rule.
type ExplainCmd struct {
	RuleID string `help:"Rule ID, e.g. balance-sheet/equation." arg:"" name:"rule-id"`
}

func (cmd *ExplainCmd) Run(ctx *kong.Context, globals *Globals) error {
	rule, ok := rules.Default().Get(cmd.RuleID)
	if !ok {
		_, _ = fmt.Fprintln(ctx.Stderr, errorStyle.Render("ルールが見つかりません: "+cmd.RuleID))
		_, _ = fmt.Fprintln(ctx.Stderr, "\n利用可能なルールは 'zeicheck list-rules' で確認できます。")
		return NewCommandError(ExitFailed)
	}

	styles := globals.Styles(ctx.Stdout)

	applies := "すべて"
	if len(rule.AppliesTo) > 0 {
		labels := make([]string, len(rule.AppliesTo))
		for i, t := range rule.AppliesTo {
			labels[i] = t.Label()
		}
		applies = strings.Join(labels, ", ")
	}

	var buf strings.Builder
	buf.WriteString("\n")
	buf.WriteString(styles.Keyword(rule.ID))
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  %s %s\n", styles.Dim("名前:"), rule.Name)
	fmt.Fprintf(&buf, "  %s %s\n", styles.Dim("重要度:"), styles.Severity(string(rule.Severity), string(rule.Severity)))
	fmt.Fprintf(&buf, "  %s %s\n", styles.Dim("対象:"), applies)
	fmt.Fprintf(&buf, "\n  %s\n\n", rule.Description)

	_, err := fmt.Fprint(ctx.Stdout, buf.String())
	return err
}
