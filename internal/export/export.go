// Package export renders the book catalog as an XML document.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/mader-project/mader/internal/models"
)

// Catalog builds an XML document of novelists with their books nested under
// them. Books whose novelist is missing from the list are skipped.
func Catalog(novelists []models.Novelist, books []models.Book) ([]byte, error) {
	byNovelist := make(map[int64][]models.Book, len(novelists))
	for _, book := range books {
		byNovelist[book.IDNovelist] = append(byNovelist[book.IDNovelist], book)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("catalog")

	for _, novelist := range novelists {
		n := root.CreateElement("novelist")
		n.CreateAttr("id", strconv.FormatInt(novelist.ID, 10))
		n.CreateElement("name").SetText(novelist.Name)

		booksEl := n.CreateElement("books")
		for _, book := range byNovelist[novelist.ID] {
			b := booksEl.CreateElement("book")
			b.CreateAttr("id", strconv.FormatInt(book.ID, 10))
			b.CreateElement("title").SetText(book.Title)
			b.CreateElement("year").SetText(strconv.Itoa(book.Year))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render catalog: %w", err)
	}
	return out, nil
}
