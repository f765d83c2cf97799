package paradex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sv/mcp-paradex-go/envelope"
	"github.com/sv/mcp-paradex-go/format"
	"github.com/sv/mcp-paradex-go/models"
)

func sampleSummaries() []models.MarketSummary {
	base := models.MarketSummary{
		MarkPrice: "0", LastTradedPrice: "0", Bid: "0", Ask: "0",
		TotalVolume: "0", CreatedAt: 1718000000000,
		UnderlyingPrice: "0", OpenInterest: "0",
		FundingRate: "0.0001", PriceChangeRate24h: "0",
	}

	btc := base
	btc.Symbol = "BTC-USD-PERP"
	btc.Volume24h = "100"

	eth := base
	eth.Symbol = "ETH-USD-PERP"
	eth.Volume24h = "500"

	sol := base
	sol.Symbol = "SOL-USD-PERP"
	sol.Volume24h = "50"

	return []models.MarketSummary{btc, eth, sol}
}

func TestCompressEncodeDecodeDecompress_EndToEnd(t *testing.T) {
	summaries := sampleSummaries()
	schema := models.MustSchema("MarketSummary")

	form, err := CompressRecords(summaries)
	require.NoError(t, err)
	require.Equal(t, "0.0001", form.Common["funding_rate"])

	data, err := EncodeEnvelope(form, schema, envelope.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	restored, err := DecodeEnvelope(data, schema)
	require.NoError(t, err)
	require.Equal(t, form, restored)

	got, err := DecompressRecords[models.MarketSummary](restored, schema)
	require.NoError(t, err)
	require.Equal(t, summaries, got)
}

func TestFilterRecords_TopVolume(t *testing.T) {
	summaries := sampleSummaries()
	schema := models.MustSchema("MarketSummary")

	// Volumes are string-encoded decimals, so ordering needs an explicit
	// numeric coercion.
	top, err := FilterRecords(summaries, "reverse(sort_by(@, &to_number(volume_24h)))[:1]", schema)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "ETH-USD-PERP", top[0].Symbol)
}

func TestFilterRecords_IdentityExpression(t *testing.T) {
	summaries := sampleSummaries()
	schema := models.MustSchema("MarketSummary")

	got, err := FilterRecords(summaries, "", schema)
	require.NoError(t, err)
	require.Equal(t, summaries, got)
}
