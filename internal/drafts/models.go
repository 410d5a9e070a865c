package drafts

import (
	"time"

	"github.com/lkho/lrc-maker/internal/lrc"
)

// Draft is one saved working copy.
type Draft struct {
	ID        string
	Name      string
	Body      string
	Title     string
	Artist    string
	Lines     int
	Timed     int
	Duration  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document parses the stored text.
func (d *Draft) Document(opts lrc.ParseOptions) lrc.Document {
	return lrc.Parse(d.Body, opts)
}

// summarize fills the derived columns from body.
func (d *Draft) summarize() {
	doc := lrc.Parse(d.Body, lrc.ParseOptions{})
	d.Title = doc.Title()
	d.Artist = doc.Artist()
	d.Lines = len(doc.Lines)
	d.Timed = doc.Timed()
	d.Duration = doc.Duration()
}
