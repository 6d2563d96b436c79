package quest

import (
	"fmt"
	"sort"

	narrow "github.com/reoring/narrow"
)

func Add(a, b int) int { return a + b }

// TotalLevel sums the levels of the party.
func TotalLevel(party ...Adventurer) int {
	total := 0
	for _, a := range party {
		total = Add(total, a.Level)
	}
	return total
}

// Rank titles an adventurer by level.
func Rank(level int) string {
	switch {
	case level >= 50:
		return "Wizard"
	case level >= 20:
		return "Veteran"
	default:
		return "Novice"
	}
}

// Greet renders the greeting for a.
func Greet(a Adventurer) string {
	return fmt.Sprintf("Hello!, %s the %s %s (Lv.%d)", a.Name, Rank(a.Level), a.Class, a.Level)
}

func fixed(s string) func(Adventurer) (string, error) {
	return func(Adventurer) (string, error) { return s, nil }
}

var starterGear = narrow.Cases[Class, Adventurer, string](Classes()...).
	On(fixed("sword"), ClassWarrior).
	On(fixed("staff"), ClassMage).
	On(fixed("bow"), ClassArcher).
	MustBuild()

// StarterGear returns the weapon an adventurer of a's class starts with.
// An adventurer whose class is outside Classes() is reported, not equipped.
func StarterGear(a Adventurer) (string, error) { return starterGear.Apply(a) }

// Holdings totals quantity per item id.
func Holdings(summaries []Summary) map[string]int {
	out := make(map[string]int)
	for _, s := range summaries {
		out[s.ItemID] = Add(out[s.ItemID], s.Quantity)
	}
	return out
}

// SortByStarsDesc orders rows by star count, highest first; ties keep item-name order.
func SortByStarsDesc(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Repo.Stars != rows[j].Repo.Stars {
			return rows[i].Repo.Stars > rows[j].Repo.Stars
		}
		return rows[i].Item.Name < rows[j].Item.Name
	})
}
