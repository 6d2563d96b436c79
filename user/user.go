// Package user is the construct-once, read-only User record.
package user

import (
	"net/mail"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	narrow "github.com/reoring/narrow"
	"github.com/reoring/narrow/codec"
	"github.com/reoring/narrow/i18n"
)

// UserID is an opaque identifier shaped like five hyphen-joined segments
// (a UUID is the usual inhabitant). Segments may themselves be empty.
type UserID string

// ParseUserID accepts any string with at least four hyphens.
func ParseUserID(s string) (UserID, error) {
	if strings.Count(s, "-") < 4 {
		return "", narrow.Issues{{Path: "/id", Code: narrow.CodeInvalidFormat, Message: i18n.T(narrow.CodeInvalidFormat, nil), Hint: "expected five hyphen-separated segments"}}
	}
	return UserID(s), nil
}

// NewUserID returns a fresh random UUID-shaped id.
func NewUserID() UserID { return UserID(uuid.NewString()) }

func (id UserID) String() string { return string(id) }

// User is immutable after construction; use the accessors to read it.
type User struct {
	id    UserID
	name  string
	email *string
}

// New builds a user without an email. name must not be blank.
func New(id UserID, name string) (User, error) {
	var iss narrow.Issues
	if _, err := ParseUserID(string(id)); err != nil {
		sub, _ := narrow.AsIssues(err)
		iss = narrow.AppendIssues(iss, sub...)
	}
	if strings.TrimSpace(name) == "" {
		iss = narrow.AppendIssues(iss, narrow.Issue{Path: "/name", Code: narrow.CodeRequired, Message: i18n.T(narrow.CodeRequired, nil)})
	}
	if len(iss) > 0 {
		return User{}, iss
	}
	return User{id: id, name: name}, nil
}

// WithEmail returns a copy of u carrying email. u itself is unchanged.
func (u User) WithEmail(email string) (User, error) {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return User{}, narrow.Issues{{Path: "/email", Code: narrow.CodeInvalidFormat, Message: i18n.T(narrow.CodeInvalidFormat, nil), Hint: "expected a bare address", Cause: err}}
	}
	e := email
	u.email = &e
	return u, nil
}

func (u User) ID() UserID   { return u.id }
func (u User) Name() string { return u.name }

// Email returns the address and whether one is set.
func (u User) Email() (string, bool) {
	if u.email == nil {
		return "", false
	}
	return *u.email, true
}

// Format renders "[<now in ISO-8601 UTC>] <name>".
func Format(u User, now time.Time) string {
	return "[" + codec.FormatISO(now) + "] " + u.name
}

// Greet renders the greeting line for u.
func Greet(u User) string { return "Hello!, " + u.name }

// wire is the JSON shape of a User.
type wire struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// Decode builds a User from JSON, applying the same rules as New and WithEmail.
func Decode(data []byte) (User, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return User{}, narrow.Issues{{Path: "/", Code: narrow.CodeParseError, Message: i18n.T(narrow.CodeParseError, nil), Cause: err}}
	}
	u, err := New(UserID(w.ID), w.Name)
	if err != nil {
		return User{}, err
	}
	if w.Email != nil {
		return u.WithEmail(*w.Email)
	}
	return u, nil
}

// MarshalJSON encodes u in the same shape Decode accepts.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{ID: string(u.id), Name: u.name, Email: u.email})
}
