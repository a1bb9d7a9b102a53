package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/songzhibin97/rankfi/internal/models"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name string
		in   models.Value
		want int64
	}{
		{name: "plus suffix", in: models.String("300+"), want: 300},
		{name: "millions", in: models.String("1.5M"), want: 1_500_000},
		{name: "billions", in: models.String("1B"), want: 1_000_000_000},
		{name: "thousands lower case", in: models.String("2k"), want: 2_000},
		{name: "empty", in: models.String(""), want: 0},
		{name: "native number", in: models.Number(42), want: 42},
		{name: "plain digits", in: models.String("350"), want: 350},
		{name: "suffix with plus", in: models.String("1.5M+"), want: 1_500_000},
		{name: "leverage", in: models.String("125x"), want: 125},
		{name: "separators", in: models.String("1,000"), want: 1_000},
		{name: "no digits", in: models.String("N/A"), want: 0},
		{name: "null", in: models.Value{}, want: 0},
		{name: "boolean", in: models.Bool(true), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCount(tt.in))
		})
	}
}

func TestParseFee(t *testing.T) {
	assert.Equal(t, 0.1, ParseFee(models.String("0.10%")))
	assert.Equal(t, 0.08, ParseFee(models.String("0.08% to 0.10%")))
	assert.Equal(t, 0.0, ParseFee(models.String("spread")))
	assert.Equal(t, 0.25, ParseFee(models.Number(0.25)))
}

func TestIncidentYear(t *testing.T) {
	assert.Equal(t, 2023, IncidentYear(models.String("2023, 2025")))
	assert.Equal(t, 2019, IncidentYear(models.String("Mar 2019")))
	assert.Equal(t, 0, IncidentYear(models.String("No")))
	assert.Equal(t, 0, IncidentYear(models.String("")))
	assert.Equal(t, 0, IncidentYear(models.String("twice")))
}

func TestFormatCellValue(t *testing.T) {
	assert.Equal(t, "N/A", FormatCellValue(models.Value{}))
	assert.Equal(t, "N/A", FormatCellValue(models.String("")))
	assert.Equal(t, "Yes", FormatCellValue(models.Bool(true)))
	assert.Equal(t, "No", FormatCellValue(models.Bool(false)))
	assert.Equal(t, "300+", FormatCellValue(models.String("300+")))
	assert.Equal(t, "350", FormatCellValue(models.Number(350)))
	assert.Equal(t, "N/A", FormatCellValue(models.String("N/A")))
}

func TestFormatFlag(t *testing.T) {
	assert.Equal(t, "Yes", FormatFlag(models.String("yes")))
	assert.Equal(t, "No", FormatFlag(models.String("FALSE")))
	assert.Equal(t, "N/A", FormatFlag(models.String("Mandatory")))
	assert.Equal(t, "N/A", FormatFlag(models.Value{}))
}

func TestPlaceholderColor(t *testing.T) {
	// 'B' is 66, 66 % 8 == 2
	assert.Equal(t, "#F59E0B", PlaceholderColor("Binance"))
	assert.Equal(t, PlaceholderColor("Bybit"), PlaceholderColor("Binance"))
	assert.Equal(t, "#3B82F6", PlaceholderColor(""))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "kraken-pro", Slug("Kraken Pro"))
	assert.Equal(t, "crypto.com-exchange", Slug("Crypto.com \t Exchange"))
	assert.Equal(t, "/cex/binance/", DetailPath("Binance"))
}
