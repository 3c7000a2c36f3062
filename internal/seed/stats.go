package seed

import "github.com/shopspring/decimal"

// Totals only include amounts whose exponent falls in this range. Text like
// "1e2000000000" parses as a decimal but would make every later Add
// rescale into an enormous integer.
const (
	minMoneyExponent = -20
	maxMoneyExponent = 20
)

// Stats summarizes one conversion.
type Stats struct {
	Rows             int
	Skipped          int
	DuplicateClients int
	Clients          int
	Shoots           int

	TotalQuoted decimal.Decimal
	TotalPaid   decimal.Decimal
	// Unparsed counts monetary values left out of the totals because they
	// are not plain amounts.
	Unparsed int
}

func (s *Stats) addMoney(quote, paid string) {
	s.TotalQuoted = s.TotalQuoted.Add(s.parse(quote))
	s.TotalPaid = s.TotalPaid.Add(s.parse(paid))
}

func (s *Stats) parse(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		s.Unparsed++
		return decimal.Zero
	}
	if exp := d.Exponent(); exp < minMoneyExponent || exp > maxMoneyExponent {
		s.Unparsed++
		return decimal.Zero
	}
	return d
}
