package seed

import (
	"fmt"

	"shootseeder/internal/csv"
	"shootseeder/internal/models"
	"shootseeder/internal/normalize"

	"github.com/charmbracelet/log"
)

// Result holds everything one conversion produced.
type Result struct {
	Layout  Layout
	Clients []models.Client
	Shoots  []models.Shoot
	Stats   Stats
}

type Converter struct {
	opts   Options
	logger *log.Logger
}

func NewConverter(opts Options, logger *log.Logger) *Converter {
	if opts.Zero == "" {
		opts.Zero = DefaultOptions(opts.Layout).Zero
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Converter{opts: opts, logger: logger}
}

// ConvertFile reads path and converts every row. Strict layouts fail when
// the header lacks a column they read.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	rows, err := csv.NewParser(path).ParseRows(c.opts.Layout.RequiredColumns()...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	c.logger.Debug("parsed shoot history", "file", path, "rows", len(rows))
	return c.Convert(rows), nil
}

// Convert runs one pass over rows. Rows without an email are skipped; all
// others yield a shoot, and the first row per email yields the client.
func (c *Converter) Convert(rows []models.ShootRow) *Result {
	clients := NewClientSet()
	result := &Result{
		Layout: c.opts.Layout,
		Shoots: make([]models.Shoot, 0, len(rows)),
	}

	for i, row := range rows {
		result.Stats.Rows++

		key := normalize.EmailKey(row.ClientEmail)
		if key == "" {
			// Header is line 1.
			c.logger.Debug("skipping row without client email", "line", i+2)
			result.Stats.Skipped++
			continue
		}

		if !clients.Add(key, c.client(row)) {
			first, _ := clients.Get(key)
			c.logger.Debug("keeping first client for email", "line", i+2, "email", first.Email, "company", first.Company)
			result.Stats.DuplicateClients++
		}

		shoot := c.shoot(key, row)
		result.Stats.addMoney(shoot.TotalQuote, shoot.TotalPaid)
		result.Shoots = append(result.Shoots, shoot)
	}

	result.Clients = clients.Clients()
	result.Stats.Clients = len(result.Clients)
	result.Stats.Shoots = len(result.Shoots)

	c.logger.Info("converted shoot history",
		"layout", c.opts.Layout,
		"rows", result.Stats.Rows,
		"clients", result.Stats.Clients,
		"shoots", result.Stats.Shoots,
		"skipped", result.Stats.Skipped,
		"duplicates", result.Stats.DuplicateClients,
	)
	if result.Stats.Unparsed > 0 {
		c.logger.Info("some monetary values are not numbers", "count", result.Stats.Unparsed)
	}

	return result
}

func (c *Converter) client(row models.ShootRow) models.Client {
	return models.Client{
		Email:     normalize.Text(row.ClientEmail),
		Name:      normalize.Text(row.ClientName),
		Phone:     normalize.Text(row.ClientPhone),
		Company:   normalize.Text(row.ClientCompany),
		CreatedBy: normalize.Text(row.CreatedBy),
	}
}

func (c *Converter) shoot(key string, row models.ShootRow) models.Shoot {
	return models.Shoot{
		ClientEmail:       key,
		ScheduledDate:     normalize.Date(row.Scheduled, c.opts.NullDates),
		CompletedDate:     normalize.Date(row.Completed, c.opts.NullDates),
		Photographer:      normalize.Text(row.Photographer),
		Services:          normalize.Text(row.Services),
		Address:           normalize.Text(row.Address),
		Address2:          normalize.Text(row.Address2),
		City:              normalize.Text(row.City),
		State:             normalize.Text(row.State),
		Zip:               normalize.Text(row.Zip),
		BaseQuote:         normalize.Money(row.BaseQuote, c.opts.Zero),
		TaxRate:           normalize.Percent(row.Tax),
		TaxAmount:         normalize.Money(row.TaxAmount, c.opts.Zero),
		TotalQuote:        normalize.Money(row.TotalQuote, c.opts.Zero),
		TotalPaid:         normalize.Money(row.TotalPaid, c.opts.Zero),
		LastPaymentDate:   normalize.Date(row.LastPaymentDate, c.opts.NullDates),
		LastPaymentType:   normalize.Text(row.LastPaymentType),
		TourPurchased:     normalize.Text(row.TourPurchased),
		ShootNotes:        normalize.Text(row.ShootNotes),
		PhotographerNotes: normalize.Text(row.PhotographerNotes),
		CreatedBy:         normalize.Text(row.CreatedBy),
	}
}
