package book

// Book is a catalog item with a stock count. Books are seeded once at
// process start and only ever mutated through stock decrements.
type Book struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author,omitempty"`
	Price  float64 `json:"price,omitempty"`
	Stock  int     `json:"stock"`
}
