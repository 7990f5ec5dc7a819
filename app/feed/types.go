package feed

// Item is one raw feed entry projected down to the fields the extraction
// prompt consumes. Absent elements project to empty strings.
type Item struct {
	Title       string
	Link        string
	Description string
}
