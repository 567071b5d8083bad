package hn

// Item is the wire representation of a Hacker News item. The same shape
// covers stories, comments, jobs and polls; Type distinguishes them.
type Item struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	By          string  `json:"by"`
	Time        int64   `json:"time"`
	Text        string  `json:"text"`
	URL         string  `json:"url"`
	Score       int     `json:"score"`
	Title       string  `json:"title"`
	Kids        []int64 `json:"kids"`
	Parent      int64   `json:"parent"`
	Descendants int     `json:"descendants"`
	Deleted     bool    `json:"deleted"`
	Dead        bool    `json:"dead"`
}

const (
	TypeStory   = "story"
	TypeComment = "comment"
)
