package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/szyszomat/KiedySmieciKRK/internal/export"
	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
	"github.com/szyszomat/KiedySmieciKRK/internal/ocr"
	"github.com/szyszomat/KiedySmieciKRK/internal/upstream"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	var (
		tokensInput bool
		format      string
		outPath     string
		save        bool
		reminders   export.ReminderOptions
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Turn recognized schedule text into a structured record",
		Long: "Parses recognized text into collection dates and categories.\n" +
			"The input file holds either raw text or, with --tokens, a JSON\n" +
			"array of {text, confidence} objects from the recognition engine.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := loadPack(opts)
			if err != nil {
				return err
			}

			parser := ocr.NewParser(pack)
			rec, err := parseInput(parser, args[0], tokensInput)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			if save {
				store, err := upstream.NewStore(opts.dataDir)
				if err != nil {
					return err
				}
				if _, err := store.SaveRecord(rec.Address, rec.HouseNumber, rec); err != nil {
					return err
				}
			}

			switch format {
			case "json":
				return export.WriteJSON(out, rec)
			case "ics":
				return export.WriteICS(out, rec, pack, reminders)
			case "csv":
				return export.WriteCSV(out, rec, pack)
			case "text":
				fmt.Fprint(out, formatRecord(rec, pack))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text, json, ics or csv)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&tokensInput, "tokens", false, "input is recognition-token JSON, not raw text")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, ics or csv")
	cmd.Flags().StringVar(&outPath, "out", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "also save the record to the data directory")
	cmd.Flags().StringVar(&reminders.TwoDaysBefore, "remind-2d", "", "ICS reminder two days before (HH:MM)")
	cmd.Flags().StringVar(&reminders.OneDayBefore, "remind-1d", "", "ICS reminder one day before (HH:MM)")
	cmd.Flags().StringVar(&reminders.SameDay, "remind-same-day", "", "ICS reminder on the day (HH:MM)")

	return cmd
}

func parseInput(parser *ocr.Parser, path string, tokensInput bool) (*ocr.ScheduleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if tokensInput {
		var tokens []ocr.Token
		if err := json.NewDecoder(f).Decode(&tokens); err != nil {
			return nil, fmt.Errorf("decode token file %s: %w", path, err)
		}
		return parser.ParseTokens(tokens)
	}

	text, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return parser.Parse(string(text))
}

// formatRecord renders a record for the terminal, organized by date, with
// localized weekday and category names. Dates that land on a public holiday
// get flagged: collections never run then, so the day number was most likely
// misread.
func formatRecord(rec *ocr.ScheduleRecord, pack *locale.Pack) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Adres: %s %s\n", rec.Address, rec.HouseNumber)
	fmt.Fprintf(&b, "Liczba wywozów: %d\n\n", rec.TotalCollections)

	type row struct {
		iso       string
		formatted string
		weekday   string
		labels    []string
	}
	byDate := make(map[string]*row)
	var order []string

	addLabel := func(d ocr.CollectionDate, label string) {
		r, ok := byDate[d.ISODate]
		if !ok {
			r = &row{iso: d.ISODate, formatted: d.Formatted, weekday: localWeekday(d, pack)}
			byDate[d.ISODate] = r
			order = append(order, d.ISODate)
		}
		if label != "" {
			r.labels = append(r.labels, label)
		}
	}

	categories := make([]string, 0, len(rec.Categories))
	for c := range rec.Categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		label := c
		if name, ok := pack.CategoryNames[c]; ok {
			label = name
		}
		for _, d := range rec.Categories[c] {
			addLabel(d, label)
		}
	}
	for _, d := range rec.Dates {
		addLabel(d, "")
	}
	sort.Strings(order)

	years := make(map[int]bool)
	for _, iso := range order {
		if t, err := time.Parse("2006-01-02", iso); err == nil {
			years[t.Year()] = true
		}
	}
	holidays := make(map[string]string)
	for year := range years {
		for iso, name := range locale.PublicHolidays(year) {
			holidays[iso] = name
		}
	}

	b.WriteString("Harmonogram (według daty):\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	for _, iso := range order {
		r := byDate[iso]
		if len(r.labels) == 0 {
			fmt.Fprintf(&b, "%s (%s)\n", r.formatted, r.weekday)
		} else {
			fmt.Fprintf(&b, "%s (%s) - %s\n", r.formatted, r.weekday, strings.Join(r.labels, ", "))
		}
		if name, ok := holidays[iso]; ok {
			fmt.Fprintf(&b, "  Uwaga: %s wypada w święto (%s)\n", r.formatted, name)
		}
	}

	return b.String()
}

func localWeekday(d ocr.CollectionDate, pack *locale.Pack) string {
	t, err := time.Parse("2006-01-02", d.ISODate)
	if err != nil {
		return d.Weekday
	}
	if name, ok := pack.WeekdayNames[t.Weekday()]; ok {
		return name
	}
	return d.Weekday
}
