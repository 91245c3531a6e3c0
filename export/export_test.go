package export_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/drake/rainwater/export"
	"github.com/drake/rainwater/water"
)

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]export.Format{
		"":        export.FormatText,
		"text":    export.FormatText,
		"JSON":    export.FormatJSON,
		"msgpack": export.FormatMsgPack,
	} {
		got, err := export.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := export.ParseFormat("yaml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestWrite_Text(t *testing.T) {
	heights := []int{3, 0, 2, 0, 4}

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatText, heights, water.Compute(heights)))
	assert.Equal(t, "total=7 water=[0 3 1 3 0]\n", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	heights := []int{0, 2, 0, 2, 0}

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatJSON, heights, water.Compute(heights)))
	assert.JSONEq(t, `{"heights":[0,2,0,2,0],"waterAt":[0,0,2,0,0],"total":2}`, buf.String())

	var rec export.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, int64(2), rec.Total)
}

func TestWrite_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatJSON, nil, water.Compute(nil)))
	assert.JSONEq(t, `{"heights":[],"waterAt":[],"total":0}`, buf.String())
}

func TestWrite_MsgPack(t *testing.T) {
	heights := []int{3, 0, 2, 0, 4}

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatMsgPack, heights, water.Compute(heights)))

	var rec export.Record
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, heights, rec.Heights)
	assert.Equal(t, []int{0, 3, 1, 3, 0}, rec.WaterAt)
	assert.Equal(t, int64(7), rec.Total)
}
