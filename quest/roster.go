package quest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	narrow "github.com/reoring/narrow"
	"github.com/reoring/narrow/i18n"
)

// Roster is the party, its gear and what each member holds.
type Roster struct {
	Adventurers []Adventurer `yaml:"adventurers"`
	Items       []Item       `yaml:"items"`
	Summaries   []Summary    `yaml:"summaries"`
}

// LoadRoster decodes a YAML roster and validates every entry. Unknown keys are
// rejected.
func LoadRoster(r io.Reader) (Roster, error) {
	var ro Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ro); err != nil && !errors.Is(err, io.EOF) {
		return Roster{}, narrow.Issues{{Path: "/", Code: narrow.CodeParseError, Message: i18n.T(narrow.CodeParseError, nil), Cause: err}}
	}
	if err := ro.Validate(); err != nil {
		return Roster{}, err
	}
	return ro, nil
}

// Validate checks ids, enums, levels, quantities and cross references.
func (ro Roster) Validate() error {
	var iss narrow.Issues
	add := func(base string, err error) {
		sub, ok := narrow.AsIssues(err)
		if !ok {
			return
		}
		for _, it := range sub {
			it.Path = base + it.Path
			iss = narrow.AppendIssues(iss, it)
		}
	}

	checkID := func(base, id string, seen map[string]bool) {
		switch {
		case strings.TrimSpace(id) == "":
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/id", Code: narrow.CodeRequired, Message: i18n.T(narrow.CodeRequired, nil)})
		case seen[id]:
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/id", Code: narrow.CodeDuplicateKey, Message: i18n.T(narrow.CodeDuplicateKey, nil), Hint: "id '" + id + "' already used"})
		}
	}

	users := map[string]bool{}
	for i, a := range ro.Adventurers {
		base := fmt.Sprintf("/adventurers/%d", i)
		checkID(base, a.ID, users)
		if strings.TrimSpace(a.Name) == "" {
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/name", Code: narrow.CodeRequired, Message: i18n.T(narrow.CodeRequired, nil)})
		}
		if a.Level < 1 {
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/level", Code: narrow.CodeTooSmall, Message: i18n.T(narrow.CodeTooSmall, nil), Params: map[string]any{"min": 1, "got": a.Level}})
		}
		_, err := ParseClass(string(a.Class))
		add(base, err)
		users[a.ID] = true
	}

	items := map[string]bool{}
	for i, it := range ro.Items {
		base := fmt.Sprintf("/items/%d", i)
		checkID(base, it.ID, items)
		if strings.TrimSpace(it.Name) == "" {
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/name", Code: narrow.CodeRequired, Message: i18n.T(narrow.CodeRequired, nil)})
		}
		_, err := ParseItemType(string(it.Type))
		add(base, err)
		_, err = ParseRarity(string(it.Rarity))
		add(base, err)
		if it.Repo != "" && strings.Count(it.Repo, "/") != 1 {
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/repo", Code: narrow.CodeInvalidFormat, Message: i18n.T(narrow.CodeInvalidFormat, nil), Hint: "expected owner/name"})
		}
		items[it.ID] = true
	}

	for i, s := range ro.Summaries {
		base := fmt.Sprintf("/summaries/%d", i)
		if !users[s.UserID] {
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/user_id", Code: narrow.CodeInvalidEnum, Message: i18n.T(narrow.CodeInvalidEnum, nil), Hint: "unknown adventurer '" + s.UserID + "'"})
		}
		if !items[s.ItemID] {
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/item_id", Code: narrow.CodeInvalidEnum, Message: i18n.T(narrow.CodeInvalidEnum, nil), Hint: "unknown item '" + s.ItemID + "'"})
		}
		if s.Quantity < 1 {
			iss = narrow.AppendIssues(iss, narrow.Issue{Path: base + "/quantity", Code: narrow.CodeTooSmall, Message: i18n.T(narrow.CodeTooSmall, nil)})
		}
	}

	if len(iss) > 0 {
		return iss
	}
	return nil
}
