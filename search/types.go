package search

// Result holds the lines that matched a query, in file order.
// Each line is a substring of the searched contents.
type Result []string
