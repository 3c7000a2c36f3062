package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		in   string
		zero string
		want string
	}{
		{"currency and separator", "$1,234.50", ZeroPlain, "1234.50"},
		{"padded", "  $ 99 ", ZeroPlain, "99"},
		{"empty plain zero", "", ZeroPlain, "0"},
		{"empty decimal zero", "", ZeroDecimal, "0.00"},
		{"only symbols", "$,", ZeroDecimal, "0.00"},
		{"garbage passes through", "$N/A", ZeroPlain, "N/A"},
		{"negative", "-$1,000", ZeroPlain, "-1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.in, tt.zero))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "7.5", Percent("7.5%"))
	assert.Equal(t, "8", Percent(" 8 % "))
	assert.Equal(t, "0", Percent(""))
	assert.Equal(t, "0", Percent("%"))
}

func TestEmailKey(t *testing.T) {
	assert.Equal(t, "a@x.com", EmailKey("  A@X.com "))
	assert.Equal(t, "", EmailKey("   "))
}

func TestText(t *testing.T) {
	assert.Equal(t, "Acme Inc", Text("\tAcme Inc \n"))
}

func TestDate(t *testing.T) {
	assert.Nil(t, Date("  ", true))

	empty := Date("", false)
	require.NotNil(t, empty)
	assert.Equal(t, "", *empty)

	d := Date(" 03/14/2024 ", true)
	require.NotNil(t, d)
	assert.Equal(t, "03/14/2024", *d)
}
