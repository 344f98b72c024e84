// backend/internal/domain/record.go
package domain

// DateSlots is the number of date rows a listing contributes to a record.
const DateSlots = 4

// SchemaWidth is the column count of every record written to the spreadsheet.
const SchemaWidth = 18

// Pair is one labelled spreadsheet cell.
type Pair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Sentinel builds a placeholder pair whose label and value are the same constant.
func Sentinel(v string) Pair {
	return Pair{Label: v, Value: v}
}

// Placeholders are the constant columns the site pages do not provide.
type Placeholders struct {
	Filler   string `yaml:"filler" json:"filler"`
	Number   string `yaml:"number" json:"number"`
	City     string `yaml:"city" json:"city"`
	VAT      string `yaml:"vat" json:"vat"`
	Currency string `yaml:"currency" json:"currency"`
}

// DefaultPlaceholders returns the sentinel values used by the setam export.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Filler:   "ХХХХХХХ",
		Number:   "11111111",
		City:     "Київ",
		VAT:      "без ПДВ",
		Currency: "Гривня",
	}
}

// Record is one auction listing. Extracted fields are named; the remaining
// columns are filled from Placeholders when the record is flattened.
type Record struct {
	Source        Pair
	Dates         [DateSlots]Pair
	Description   Pair
	StartPrice    Pair
	PublicityDate Pair
	Placeholders  Placeholders
}

// Pairs flattens the record into its SchemaWidth spreadsheet columns.
func (r Record) Pairs() []Pair {
	p := r.Placeholders
	pairs := make([]Pair, 0, SchemaWidth)
	pairs = append(pairs, r.Source, Sentinel(p.Filler))
	pairs = append(pairs, r.Dates[:]...)
	pairs = append(pairs,
		Sentinel(p.Filler),
		Sentinel(p.Number),
		Sentinel(p.City),
		Sentinel(p.City),
		r.Description,
		Sentinel(p.Filler),
		Sentinel(p.Filler),
		Sentinel(p.Filler),
		r.StartPrice,
		Sentinel(p.VAT),
		Sentinel(p.Currency),
		r.PublicityDate,
	)
	return pairs
}

// Labels returns the column labels in schema order.
func (r Record) Labels() []string {
	pairs := r.Pairs()
	labels := make([]string, len(pairs))
	for i, p := range pairs {
		labels[i] = p.Label
	}
	return labels
}

// Values returns the column values in schema order.
func (r Record) Values() []string {
	pairs := r.Pairs()
	values := make([]string, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}
	return values
}
