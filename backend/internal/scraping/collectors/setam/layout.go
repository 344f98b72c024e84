package setam

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/ps-vitor/setam-sys/backend/internal/config"
)

// Layout holds the named structural locators for setam pages.
type Layout struct {
	sel              config.SelectorConfig
	excludedDateRows map[int]bool
	paymentRow       int
}

func NewLayout(cfg config.SetamConfig) Layout {
	excluded := make(map[int]bool, len(cfg.DateRows.ExcludePositions))
	for _, pos := range cfg.DateRows.ExcludePositions {
		excluded[pos] = true
	}
	return Layout{
		sel:              cfg.Selectors,
		excludedDateRows: excluded,
		paymentRow:       cfg.PaymentRow.Position,
	}
}

// Articles returns the listing cards: the children of the first block nested
// in the first div of the tab container.
func (l Layout) Articles(doc *goquery.Document) *goquery.Selection {
	return doc.Find(l.sel.TabContainer).First().
		Find("div").First().
		ChildrenFiltered("div").First().
		Children()
}

// ArticleLink returns the href of the first anchor in an article.
func (l Layout) ArticleLink(article *goquery.Selection) (string, bool) {
	return article.Find(l.sel.ArticleLink).First().Attr("href")
}

// ItemBlocks returns the content panel's blocks without the leading header block.
// Only the first panel is read on purpose; blocks of later panels are ignored.
func (l Layout) ItemBlocks(doc *goquery.Document) *goquery.Selection {
	return doc.Find(l.sel.ItemPanel).First().
		ChildrenFiltered("div").
		FilterFunction(func(i int, _ *goquery.Selection) bool {
			return i > 0
		})
}

// DateRows returns the date rows of a summary block minus the excluded positions.
func (l Layout) DateRows(block *goquery.Selection) *goquery.Selection {
	return block.Find(l.sel.DateRow).FilterFunction(func(i int, _ *goquery.Selection) bool {
		return !l.excludedDateRows[i+1]
	})
}

// StartPrice returns the start-price row of a summary block.
func (l Layout) StartPrice(block *goquery.Selection) *goquery.Selection {
	return block.Find(l.sel.StartPriceRow)
}

// PaymentRow returns the configured payment row, the last one by default.
func (l Layout) PaymentRow(block *goquery.Selection) *goquery.Selection {
	rows := block.Find(l.sel.PaymentRow)
	if l.paymentRow == 0 {
		return rows.Last()
	}
	return rows.Eq(l.paymentRow - 1)
}

// DescriptionParagraphs returns the paragraphs of the lot description.
func (l Layout) DescriptionParagraphs(block *goquery.Selection) *goquery.Selection {
	return block.Find(l.sel.FeatureBlock).Find(l.sel.Paragraph)
}
