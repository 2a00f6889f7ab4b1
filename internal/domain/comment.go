package domain

// Comment is one node of an article's comment tree. Like Article, fields the API leaves
// out stay nil so they encode as null rather than as empty strings.
type Comment struct {
	TypeOf    *string   `json:"type_of"`
	IDCode    *string   `json:"id_code"`
	CreatedAt *string   `json:"created_at"`
	BodyHTML  *string   `json:"body_html"`
	User      *Author   `json:"user"`
	Children  []Comment `json:"children"`

	// BodyText is BodyHTML reduced to plain text. Filled locally, never sent by the API.
	BodyText *string `json:"body_text"`
}

// CountComments returns the number of comments in the forest, replies included.
func CountComments(comments []Comment) int {
	n := 0
	for _, c := range comments {
		n += 1 + CountComments(c.Children)
	}
	return n
}
