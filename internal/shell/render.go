package shell

import (
	"fmt"
	"text/tabwriter"

	"github.com/ugur10/book-tracker/internal/books"
)

func (a *App) render(list []books.Book) {
	a.println()
	if len(list) == 0 {
		a.println("(no books)")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Title\tAuthor\tStatus")
	fmt.Fprintln(tw, "-----\t------\t------")
	for _, b := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Title, b.Author, b.Status())
	}
	_ = tw.Flush()
}
