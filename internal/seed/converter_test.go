package seed

import (
	"bytes"
	"io"
	"time"
	"os"
	"path/filepath"
	"testing"

	"shootseeder/internal/csv"
	"shootseeder/internal/models"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestConvertDedupesClientsFirstWins(t *testing.T) {
	rows := []models.ShootRow{
		{ClientEmail: "A@x.com", ClientCompany: "Acme"},
		{ClientEmail: "a@x.com", ClientCompany: "Beta"},
	}

	result := NewConverter(DefaultOptions(LayoutHistory), quietLogger()).Convert(rows)

	require.Len(t, result.Clients, 1)
	assert.Equal(t, "A@x.com", result.Clients[0].Email)
	assert.Equal(t, "Acme", result.Clients[0].Company)

	require.Len(t, result.Shoots, 2)
	for _, s := range result.Shoots {
		assert.Equal(t, "a@x.com", s.ClientEmail)
	}
	assert.Equal(t, 1, result.Stats.DuplicateClients)
}

func TestConvertLogsKeptClientForRepeatEmail(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	rows := []models.ShootRow{
		{ClientEmail: "A@x.com", ClientCompany: "Acme"},
		{ClientEmail: "a@X.com", ClientCompany: "Beta"},
	}
	NewConverter(DefaultOptions(LayoutHistory), logger).Convert(rows)

	out := buf.String()
	assert.Contains(t, out, "keeping first client for email")
	assert.Contains(t, out, "company=Acme")
	assert.NotContains(t, out, "company=Beta")
}

func TestConvertSkipsRowsWithoutEmail(t *testing.T) {
	rows := []models.ShootRow{
		{ClientEmail: "one@x.com"},
		{ClientEmail: "   ", ClientCompany: "Ghost", TotalPaid: "$10"},
		{ClientEmail: "two@x.com"},
		{ClientEmail: "ONE@x.com"},
	}

	result := NewConverter(DefaultOptions(LayoutHistory), quietLogger()).Convert(rows)

	assert.Len(t, result.Clients, 2)
	assert.Len(t, result.Shoots, 3)
	assert.Equal(t, 4, result.Stats.Rows)
	assert.Equal(t, 1, result.Stats.Skipped)
	for _, c := range result.Clients {
		assert.NotEqual(t, "Ghost", c.Company)
	}
	assert.Equal(t, []string{"one@x.com", "two@x.com", "one@x.com"}, []string{
		result.Shoots[0].ClientEmail, result.Shoots[1].ClientEmail, result.Shoots[2].ClientEmail,
	})
}

func TestConvertNormalizesShootFields(t *testing.T) {
	row := models.ShootRow{
		ClientEmail:     " Pat@Studio.com ",
		Photographer:    " Sam ",
		Scheduled:       "03/14/2024 ",
		BaseQuote:       "$1,234.50",
		Tax:             "7.5%",
		TaxAmount:       "",
		TotalQuote:      " $1,327.09 ",
		TotalPaid:       "",
		LastPaymentDate: "",
	}

	tests := []struct {
		name      string
		opts      Options
		wantZero  string
		wantNulls bool
	}{
		{"history", DefaultOptions(LayoutHistory), "0", false},
		{"shoots", DefaultOptions(LayoutShoots), "0.00", true},
		{"history with null dates", Options{Layout: LayoutHistory, NullDates: true}, "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewConverter(tt.opts, quietLogger()).Convert([]models.ShootRow{row})
			require.Len(t, result.Shoots, 1)
			s := result.Shoots[0]

			assert.Equal(t, "pat@studio.com", s.ClientEmail)
			assert.Equal(t, "Sam", s.Photographer)
			require.NotNil(t, s.ScheduledDate)
			assert.Equal(t, "03/14/2024", *s.ScheduledDate)
			assert.Equal(t, "1234.50", s.BaseQuote)
			assert.Equal(t, "7.5", s.TaxRate)
			assert.Equal(t, tt.wantZero, s.TaxAmount)
			assert.Equal(t, "1327.09", s.TotalQuote)
			assert.Equal(t, tt.wantZero, s.TotalPaid)

			if tt.wantNulls {
				assert.Nil(t, s.CompletedDate)
				assert.Nil(t, s.LastPaymentDate)
			} else {
				require.NotNil(t, s.CompletedDate)
				assert.Equal(t, "", *s.CompletedDate)
				require.NotNil(t, s.LastPaymentDate)
				assert.Equal(t, "", *s.LastPaymentDate)
			}

			require.Len(t, result.Clients, 1)
			assert.Equal(t, "Pat@Studio.com", result.Clients[0].Email)
		})
	}
}

func TestConvertStats(t *testing.T) {
	rows := []models.ShootRow{
		{ClientEmail: "a@x.com", TotalQuote: "$1,000.50", TotalPaid: "$500"},
		{ClientEmail: "b@x.com", TotalQuote: "$99.50", TotalPaid: "TBD"},
	}

	stats := NewConverter(DefaultOptions(LayoutShoots), quietLogger()).Convert(rows).Stats

	assert.True(t, decimal.RequireFromString("1100").Equal(stats.TotalQuoted), stats.TotalQuoted.String())
	assert.True(t, decimal.RequireFromString("500").Equal(stats.TotalPaid), stats.TotalPaid.String())
	assert.Equal(t, 1, stats.Unparsed)
	assert.Equal(t, 2, stats.Clients)
	assert.Equal(t, 2, stats.Shoots)
}

func TestConvertStatsIgnoresHugeExponents(t *testing.T) {
	rows := []models.ShootRow{
		{ClientEmail: "a@x.com", TotalQuote: "1e2000000000", TotalPaid: "$10.25"},
		{ClientEmail: "b@x.com", TotalQuote: "$5.10", TotalPaid: "1e-2000000000"},
	}

	done := make(chan *Result, 1)
	go func() {
		done <- NewConverter(DefaultOptions(LayoutHistory), quietLogger()).Convert(rows)
	}()

	select {
	case result := <-done:
		assert.Equal(t, "1e2000000000", result.Shoots[0].TotalQuote)
		assert.True(t, decimal.RequireFromString("5.10").Equal(result.Stats.TotalQuoted), result.Stats.TotalQuoted.String())
		assert.True(t, decimal.RequireFromString("10.25").Equal(result.Stats.TotalPaid), result.Stats.TotalPaid.String())
		assert.Equal(t, 2, result.Stats.Unparsed)
	case <-time.After(5 * time.Second):
		t.Fatal("Convert did not finish on an out-of-range amount")
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.csv")
	data := "Client Email,Client Company,Total Paid\nA@x.com,Acme,$5\n,Nobody,$1\na@x.com,Beta,\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Run("lenient history", func(t *testing.T) {
		result, err := NewConverter(DefaultOptions(LayoutHistory), quietLogger()).ConvertFile(path)
		require.NoError(t, err)
		assert.Len(t, result.Clients, 1)
		assert.Len(t, result.Shoots, 2)
		assert.Equal(t, "0", result.Shoots[1].TotalPaid)
	})

	t.Run("strict shoots", func(t *testing.T) {
		_, err := NewConverter(DefaultOptions(LayoutShoots), quietLogger()).ConvertFile(path)
		var missing *csv.MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Contains(t, missing.Columns, "Photographer")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewConverter(DefaultOptions(LayoutHistory), quietLogger()).ConvertFile(filepath.Join(dir, "gone.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestClientSet(t *testing.T) {
	set := NewClientSet()
	assert.True(t, set.Add("b", models.Client{Email: "b"}))
	assert.True(t, set.Add("a", models.Client{Email: "a"}))
	assert.False(t, set.Add("b", models.Client{Email: "B"}))

	got, ok := set.Get("b")
	require.True(t, ok)
	assert.Equal(t, "b", got.Email)

	_, ok = set.Get("c")
	assert.False(t, ok)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []models.Client{{Email: "b"}, {Email: "a"}}, set.Clients())
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout(" Shoots ")
	require.NoError(t, err)
	assert.Equal(t, LayoutShoots, l)

	_, err = ParseLayout("invoices")
	assert.ErrorIs(t, err, ErrUnknownLayout)

	assert.Nil(t, LayoutHistory.RequiredColumns())
	assert.Contains(t, LayoutClients.RequiredColumns(), "Client Phone")
	assert.Contains(t, LayoutShoots.RequiredColumns(), "Address2")
}
