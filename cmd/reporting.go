package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/revlog/internal/output"
)

func writeHistoryReport(c *cli.Context, ctx *CommandContext, report *output.HistoryReport) error {
	opts := OutputOptions(c, ctx)
	writer := output.NewHistoryReportWriter(opts.Format)
	return writer.Write(report, opts)
}
