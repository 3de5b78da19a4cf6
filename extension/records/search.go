// search.go implements the "docrec search" command for filtering records.
//
// Separated from records.go to isolate criteria parsing (dates, --since)
// and the three output shapes: count, summary table and full records.
//
// Design: All filters are ANDed, matching document.Search. --from and
// --since both set the lower bound, so they are mutually exclusive rather
// than silently picking one.

package records

import (
	"fmt"
	"time"

	"github.com/jpl-au/docrec/cmd"
	"github.com/jpl-au/docrec/document"
	"github.com/jpl-au/docrec/extension"
	"github.com/jpl-au/docrec/internal/duration"
	"github.com/jpl-au/docrec/internal/format"
	"github.com/jpl-au/docrec/internal/loader"
	"github.com/jpl-au/docrec/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dayLayout is the date-only form accepted by --from and --to.
const dayLayout = "2006-01-02"

// now is the clock used for --since. Tests replace it.
var now = time.Now

// countResult is the structured output of --count.
type countResult struct {
	Count int `json:"count" yaml:"count"`
}

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <path>...",
		Short: "Filter records by title, tag and date",
		Long: `Load records from files, directories or stdin ("-") and print those that
match every given filter.

  docrec search notes/ --tag finance
  docrec search notes/ --title report --since 4w
  docrec search a.md b.md --from 2025-01-01 --to 2025-03-31T23:59:59Z

Dates are RFC 3339 or YYYY-MM-DD (midnight UTC). Both bounds are inclusive.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().String(extension.FlagTitle, "", "Match titles containing text (case-insensitive)")
	c.Flags().StringP(extension.FlagTag, "t", "", "Match records carrying tag (case-insensitive)")
	c.Flags().String(extension.FlagFrom, "", "Earliest creation date")
	c.Flags().String(extension.FlagTo, "", "Latest creation date")
	c.Flags().String(extension.FlagSince, "", "Created within duration (e.g., 7d, 4w, 3m)")
	c.Flags().BoolP(extension.FlagCount, "c", false, "Print only the number of matches")
	c.Flags().Bool(extension.FlagFull, false, "Print full records instead of a table")
	c.Flags().Bool(extension.FlagIncludeHidden, false, "Include hidden files and directories")
	c.Flags().Bool(extension.FlagStrict, false, "Fail on files that cannot be loaded")
	c.MarkFlagsMutuallyExclusive(extension.FlagFrom, extension.FlagSince)
	c.MarkFlagsMutuallyExclusive(extension.FlagCount, extension.FlagFull)
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	var crit document.Criteria
	var res loader.Result
	var matches []document.Document
	var err error

	defer func() {
		log.Event("records:search", "search").
			Path(args[0]).
			Count(len(matches)).
			Detail("paths", len(args)).
			Detail("loaded", len(res.Sources)).
			Detail("skipped", len(res.Skipped)).
			Detail("title", crit.Title).
			Detail("tag", crit.Tag).
			Write(err)
	}()

	crit, err = criteria(c)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search: %w", err))
	}

	res, err = loader.Load(c.Context(), args, e.loadOptions(c))
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search: %w", err))
	}
	matches = document.Search(res.Documents(), crit)
	e.log.Debug("search complete",
		zap.Int("loaded", len(res.Sources)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("matched", len(matches)))

	if count, _ := c.Flags().GetBool(extension.FlagCount); count {
		if cmd.Structured() {
			return cmd.PrintData(countResult{Count: len(matches)})
		}
		fmt.Fprintln(cmd.Out(), len(matches))
		return nil
	}

	fs, err := e.formatter.FormatAll(matches, e.formatOptions())
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search: %w", err))
	}
	if cmd.Structured() {
		return cmd.PrintData(fs)
	}
	if full, _ := c.Flags().GetBool(extension.FlagFull); full {
		return format.Blocks(cmd.Out(), fs)
	}
	return format.Table(cmd.Out(), fs)
}

// criteria builds search criteria from the command's filter flags.
func criteria(c *cobra.Command) (document.Criteria, error) {
	var crit document.Criteria
	crit.Title, _ = c.Flags().GetString(extension.FlagTitle)
	crit.Tag, _ = c.Flags().GetString(extension.FlagTag)

	from, _ := c.Flags().GetString(extension.FlagFrom)
	to, _ := c.Flags().GetString(extension.FlagTo)
	since, _ := c.Flags().GetString(extension.FlagSince)

	var err error
	if from != "" {
		if crit.From, err = parseDate(from); err != nil {
			return crit, fmt.Errorf("--from: %w", err)
		}
	}
	if since != "" {
		if crit.From, err = duration.Since(since, now()); err != nil {
			return crit, fmt.Errorf("--since: %w", err)
		}
	}
	if to != "" {
		if crit.To, err = parseDate(to); err != nil {
			return crit, fmt.Errorf("--to: %w", err)
		}
	}
	if !crit.From.IsZero() && !crit.To.IsZero() && crit.From.After(crit.To) {
		return crit, fmt.Errorf("start %s is after end %s",
			crit.From.Format(time.RFC3339), crit.To.Format(time.RFC3339))
	}
	return crit, nil
}

// parseDate accepts RFC 3339 timestamps or plain days. A plain day is
// midnight UTC at the start of that day.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use RFC 3339 or YYYY-MM-DD)", s)
	}
	return t, nil
}
