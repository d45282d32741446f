package book

// Book is a catalog book row. AuthorID references an existing author.
type Book struct {
	ID       int64  `json:"id"`
	AuthorID int64  `json:"author_id"`
	Title    string `json:"title"`
	PubYear  int    `json:"pub_year"`
	Genre    string `json:"genre"`
}
