package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sv/mcp-paradex-go/errs"
	"github.com/sv/mcp-paradex-go/record"
)

type summary struct {
	Symbol    string `json:"symbol"`
	MarkPrice string `json:"mark_price"`
	Volume24h string `json:"volume_24h"`
	Bid       string `json:"bid"`
	Ask       string `json:"ask"`
	CreatedAt int64  `json:"created_at"`
}

func summarySchema(t *testing.T) *record.Schema {
	t.Helper()

	s, err := record.New("MarketSummary",
		record.Field{Name: "symbol", Kind: record.KindString, Required: true},
		record.Field{Name: "mark_price", Kind: record.KindString, Required: true},
		record.Field{Name: "volume_24h", Kind: record.KindString, Required: true},
		record.Field{Name: "bid", Kind: record.KindString, Required: true},
		record.Field{Name: "ask", Kind: record.KindString, Required: true},
		record.Field{Name: "created_at", Kind: record.KindInteger, Required: true},
	)
	require.NoError(t, err)

	return s
}

func sampleSummaries() []summary {
	return []summary{
		{Symbol: "BTC-USD-PERP", MarkPrice: "65000", Volume24h: "100", Bid: "64990", Ask: "65010", CreatedAt: 1},
		{Symbol: "ETH-USD-PERP", MarkPrice: "3200", Volume24h: "500", Bid: "3199", Ask: "3201", CreatedAt: 2},
		{Symbol: "SOL-USD-PERP", MarkPrice: "140", Volume24h: "50", Bid: "139", Ask: "141", CreatedAt: 3},
	}
}

func TestApply_IdentityOnEmptyExpression(t *testing.T) {
	s := summarySchema(t)
	input := sampleSummaries()

	got, err := Apply(input, "", s)
	require.NoError(t, err)
	require.Equal(t, input, got)

	got, err = Apply(input, "null", s)
	require.NoError(t, err)
	require.Equal(t, input, got)
}

func TestApply_PredicateFilter(t *testing.T) {
	s := summarySchema(t)

	got, err := Apply(sampleSummaries(), "[?symbol=='ETH-USD-PERP']", s)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "ETH-USD-PERP", got[0].Symbol)
}

func TestApply_NoMatchesYieldsEmpty(t *testing.T) {
	s := summarySchema(t)

	got, err := Apply(sampleSummaries(), "[?symbol=='DOGE-USD-PERP']", s)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestApply_NumericSortOverStringEncodedField(t *testing.T) {
	// volume_24h values "100", "500", "50": the numeric top is "500",
	// the lexical top would be "50".
	s := summarySchema(t)

	got, err := Apply(sampleSummaries(),
		"reverse(sort_by(@, &to_number(volume_24h)))[:1]", s)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "ETH-USD-PERP", got[0].Symbol)
	require.Equal(t, "500", got[0].Volume24h)
}

func TestApply_ProjectionToleratesDroppedRequiredFields(t *testing.T) {
	// The schema declares six required fields; keeping two must still
	// produce typed results.
	s := summarySchema(t)

	got, err := Apply(sampleSummaries(), "[*].{symbol: symbol, bid: bid}", s)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "BTC-USD-PERP", got[0].Symbol)
	require.Equal(t, "64990", got[0].Bid)
	require.Empty(t, got[0].MarkPrice)
	require.Zero(t, got[0].CreatedAt)
}

func TestApply_ParseFailureIsFast(t *testing.T) {
	// A collection that cannot be erased: channels have no JSON form. A
	// syntax error must surface before erasure is ever attempted, so the
	// parse error wins.
	type unerasable struct {
		Ch chan int `json:"ch"`
	}
	s := summarySchema(t)

	var sunk []string
	_, err := Apply([]unerasable{{Ch: make(chan int)}}, "[?", s,
		WithErrorSink(func(msg string) { sunk = append(sunk, msg) }))

	require.ErrorIs(t, err, errs.ErrQueryParse)
	require.NotErrorIs(t, err, errs.ErrQueryEvaluation)
	require.Len(t, sunk, 1)
	require.Contains(t, sunk[0], "compile expression")
}

func TestApply_ScalarResultIsEvaluationError(t *testing.T) {
	s := summarySchema(t)

	var sunk []string
	_, err := Apply(sampleSummaries(), "length(@)", s,
		WithErrorSink(func(msg string) { sunk = append(sunk, msg) }))

	require.ErrorIs(t, err, errs.ErrQueryEvaluation)
	require.Len(t, sunk, 1)
	require.Contains(t, sunk[0], "want an array")
}

func TestApply_RuntimeEvaluationError(t *testing.T) {
	// avg() requires numbers; feeding it objects fails during evaluation
	// and the original diagnostic must survive in the returned error.
	s := summarySchema(t)

	var sunk []string
	_, err := Apply(sampleSummaries(), "avg(@)", s,
		WithErrorSink(func(msg string) { sunk = append(sunk, msg) }))

	require.ErrorIs(t, err, errs.ErrQueryEvaluation)
	require.Len(t, sunk, 1)
	require.True(t, strings.Contains(err.Error(), "avg"))
}

func TestApply_NonObjectElements(t *testing.T) {
	s := summarySchema(t)

	_, err := Apply(sampleSummaries(), "[*].symbol", s)
	require.ErrorIs(t, err, errs.ErrQueryEvaluation)
	require.Contains(t, err.Error(), "want an object")
}

func TestApply_SinkPanicDoesNotMaskError(t *testing.T) {
	s := summarySchema(t)

	_, err := Apply(sampleSummaries(), "[?", s,
		WithErrorSink(func(string) { panic("sink exploded") }))

	require.ErrorIs(t, err, errs.ErrQueryParse)
}

func TestApply_TypeMismatchInResult(t *testing.T) {
	// A projection that rewrites a declared string field to a number must
	// fail lenient re-validation.
	s := summarySchema(t)

	_, err := Apply(sampleSummaries(), "[*].{symbol: created_at}", s)
	require.ErrorIs(t, err, errs.ErrSchemaViolation)
}
