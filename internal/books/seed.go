package books

// SeedData returns example books to pre-populate the catalog.
func SeedData() []Book {
	return []Book{
		{
			Title:  "The Go Programming Language",
			Author: "Alan A. A. Donovan",
		},
		{
			Title:  "Introducing Go",
			Author: "Caleb Doxsey",
		},
		{
			Title:  "Concurrency in Go",
			Author: "Katherine Cox-Buday",
		},
		{
			Title:  "Go in Practice",
			Author: "Matt Butcher",
		},
	}
}
