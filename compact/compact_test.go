package compact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sv/mcp-paradex-go/errs"
	"github.com/sv/mcp-paradex-go/record"
)

type position struct {
	ID     string   `json:"id"`
	Market string   `json:"market"`
	Status string   `json:"status"`
	Size   float64  `json:"size"`
	Flags  []string `json:"flags"`
}

func positionSchema(t *testing.T) *record.Schema {
	t.Helper()

	s, err := record.New("Position",
		record.Field{Name: "id", Kind: record.KindString, Required: true},
		record.Field{Name: "market", Kind: record.KindString, Required: true},
		record.Field{Name: "status", Kind: record.KindString, Required: true},
		record.Field{Name: "size", Kind: record.KindNumber, Required: true},
		record.Field{Name: "flags", Kind: record.KindArray},
	)
	require.NoError(t, err)

	return s
}

func samplePositions() []position {
	return []position{
		{ID: "p-1", Market: "BTC-USD", Status: "OPEN", Size: 1.0, Flags: []string{"REDUCE_ONLY"}},
		{ID: "p-2", Market: "BTC-USD", Status: "OPEN", Size: 2.0, Flags: []string{"REDUCE_ONLY"}},
		{ID: "p-3", Market: "BTC-USD", Status: "OPEN", Size: 3.0, Flags: []string{"REDUCE_ONLY"}},
	}
}

func TestCompress_EmptyCollection(t *testing.T) {
	form, err := Compress([]position{})
	require.NoError(t, err)
	require.Nil(t, form)
}

func TestCompress_Singleton(t *testing.T) {
	rec := samplePositions()[0]

	form, err := Compress([]position{rec})
	require.NoError(t, err)
	require.NotNil(t, form)
	require.Empty(t, form.Common)
	require.Len(t, form.Items, 1)

	// The sole item is the verbatim dump; nothing hides in common.
	dump, err := record.Dump(rec)
	require.NoError(t, err)
	require.Equal(t, dump, form.Items[0])
}

func TestCompress_CommonExtraction(t *testing.T) {
	form, err := Compress(samplePositions())
	require.NoError(t, err)
	require.NotNil(t, form)

	require.Equal(t, map[string]any{
		"market": "BTC-USD",
		"status": "OPEN",
		"flags":  []any{"REDUCE_ONLY"},
	}, form.Common)

	require.Len(t, form.Items, 3)
	require.Equal(t, map[string]any{"id": "p-1", "size": 1.0}, form.Items[0])
	require.Equal(t, map[string]any{"id": "p-2", "size": 2.0}, form.Items[1])
	require.Equal(t, map[string]any{"id": "p-3", "size": 3.0}, form.Items[2])
}

func TestCompress_NoOverlapAndUnion(t *testing.T) {
	s := positionSchema(t)

	form, err := Compress(samplePositions())
	require.NoError(t, err)

	for _, item := range form.Items {
		union := make(map[string]struct{}, len(form.Common)+len(item))
		for name := range form.Common {
			union[name] = struct{}{}
		}
		for name := range item {
			_, overlap := form.Common[name]
			require.False(t, overlap, "field %q present in both common and item", name)
			union[name] = struct{}{}
		}
		require.Len(t, union, len(s.FieldNames()))
	}
}

func TestCompress_NoCommonFields(t *testing.T) {
	form, err := Compress([]position{
		{ID: "p-1", Market: "BTC-USD", Status: "OPEN", Size: 1.0, Flags: []string{"a"}},
		{ID: "p-2", Market: "ETH-USD", Status: "CLOSED", Size: 2.0, Flags: []string{"b"}},
	})
	require.NoError(t, err)
	require.Empty(t, form.Common)
	require.Len(t, form.Items, 2)
	require.Len(t, form.Items[0], 5)
	require.Len(t, form.Items[1], 5)
}

func TestCompress_DeepEqualityIsStructural(t *testing.T) {
	// Equal slices in different records share identity-free equality;
	// differing order keeps the field out of common.
	form, err := Compress([]position{
		{ID: "p-1", Market: "BTC-USD", Status: "OPEN", Size: 1.0, Flags: []string{"a", "b"}},
		{ID: "p-2", Market: "BTC-USD", Status: "OPEN", Size: 2.0, Flags: []string{"b", "a"}},
	})
	require.NoError(t, err)

	_, ok := form.Common["flags"]
	require.False(t, ok)
	require.Equal(t, "BTC-USD", form.Common["market"])
}

func TestRoundTrip(t *testing.T) {
	s := positionSchema(t)
	orig := samplePositions()

	form, err := Compress(orig)
	require.NoError(t, err)

	got, err := Decompress[position](form, s)
	require.NoError(t, err)
	require.Equal(t, orig, got)
}

func TestRoundTrip_Singleton(t *testing.T) {
	s := positionSchema(t)
	orig := samplePositions()[:1]

	form, err := Compress(orig)
	require.NoError(t, err)

	got, err := Decompress[position](form, s)
	require.NoError(t, err)
	require.Equal(t, orig, got)
}

func TestDecompress_AbsentMarker(t *testing.T) {
	s := positionSchema(t)

	got, err := Decompress[position](nil, s)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecompress_TamperedForm(t *testing.T) {
	s := positionSchema(t)

	form, err := Compress(samplePositions())
	require.NoError(t, err)

	// Drop a required field from one item so it exists in neither common
	// nor the item.
	delete(form.Items[1], "size")

	_, err = Decompress[position](form, s)
	require.ErrorIs(t, err, errs.ErrSchemaViolation)

	// Corrupt a value type.
	form, err = Compress(samplePositions())
	require.NoError(t, err)
	form.Items[0]["size"] = "not-a-number"

	_, err = Decompress[position](form, s)
	require.ErrorIs(t, err, errs.ErrSchemaViolation)
}
