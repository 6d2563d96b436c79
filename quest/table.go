package quest

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// SpellFailed is printed when the gathering batch fails as a whole.
const SpellFailed = "Spell failed!"

// Banner renders the opening line.
func Banner(version string, debug bool) string {
	b := "=== Adventurer Roster v" + version + " ==="
	if debug {
		b += " [debug]"
	}
	return b
}

// PrintTable writes rows as a fixed-width table.
func PrintTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tTYPE\tRARITY\tREPO\tSTARS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", r.Item.Name, r.Item.Type, r.Item.Rarity, r.Repo.FullName, r.Repo.Stars)
	}
	return tw.Flush()
}

// Epilogue closes the report with the party's total level and best find.
func Epilogue(totalLevel int, rows []Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Party level total: %d.", totalLevel)
	if len(rows) > 0 {
		best := rows[0]
		for _, r := range rows[1:] {
			if r.Repo.Stars > best.Repo.Stars {
				best = r
			}
		}
		fmt.Fprintf(&b, " Finest treasure: %s (%d stars).", best.Item.Name, best.Repo.Stars)
	}
	return b.String()
}
