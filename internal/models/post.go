package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the display format of Post.Date.
const DateLayout = "1/2/2006, 3:04:05 PM"

// MaxTitleLength is the longest accepted post title, in characters.
const MaxTitleLength = 128

// PostID identifies a post. It is written as a JSON number but older
// records (and pending edit tokens) may carry it as a numeric string, so
// both forms are accepted when decoding.
type PostID int64

func (id *PostID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := ParsePostID(s)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("post id: %w", err)
	}
	if f != float64(int64(f)) {
		return fmt.Errorf("post id %v is not an integer", f)
	}
	*id = PostID(f)
	return nil
}

func (id PostID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParsePostID parses the decimal form used on the command line and in
// string-encoded records.
func ParsePostID(s string) (PostID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q", s)
	}
	return PostID(n), nil
}

// Post is a blog entry. Hidden posts are soft-deleted: they stay in storage
// but are never listed.
type Post struct {
	ID       PostID `json:"postId"`
	Hidden   bool   `json:"postHidden"`
	Username string `json:"username"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
}

// OwnedBy reports whether p is the post (id, owner).
func (p Post) OwnedBy(id PostID, owner string) bool {
	return p.ID == id && p.Username == owner
}

// FormatDate renders t in DateLayout using local time.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}
