package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTopLevelLabelScore(t *testing.T) {
	res, ok := extractLabelScore([]byte(`{"label":"POSITIVE","score":0.97}`))

	require.True(t, ok)
	assert.Equal(t, "POSITIVE", res.Label)
	assert.Equal(t, 0.97, res.Score)
}

func TestExtractTopLevelLabelWithoutScore(t *testing.T) {
	res, ok := extractLabelScore([]byte(`{"label":"neutral"}`))

	require.True(t, ok)
	assert.Equal(t, "neutral", res.Label)
	assert.Equal(t, 0.0, res.Score)
}

func TestExtractDataArrayObject(t *testing.T) {
	res, ok := extractLabelScore([]byte(`{"data":[{"label":"negative","score":0.4}]}`))

	require.True(t, ok)
	assert.Equal(t, "negative", res.Label)
	assert.Equal(t, 0.4, res.Score)
}

func TestExtractDataArrayString(t *testing.T) {
	res, ok := extractLabelScore([]byte(`{"data":["positive"]}`))

	require.True(t, ok)
	assert.Equal(t, "positive", res.Label)
	assert.Equal(t, 0.0, res.Score)
}

func TestExtractTopLevelArrayObject(t *testing.T) {
	res, ok := extractLabelScore([]byte(`[{"label":"positive","score":0.88}]`))

	require.True(t, ok)
	assert.Equal(t, "positive", res.Label)
	assert.Equal(t, 0.88, res.Score)
}

func TestExtractTopLevelArrayString(t *testing.T) {
	res, ok := extractLabelScore([]byte(`["negative"]`))

	require.True(t, ok)
	assert.Equal(t, "negative", res.Label)
}

func TestExtractOutputObject(t *testing.T) {
	res, ok := extractLabelScore([]byte(`{"output":{"label":"neutral","score":0.5}}`))

	require.True(t, ok)
	assert.Equal(t, "neutral", res.Label)
	assert.Equal(t, 0.5, res.Score)
}

func TestExtractOutputString(t *testing.T) {
	res, ok := extractLabelScore([]byte(`{"output":"positive"}`))

	require.True(t, ok)
	assert.Equal(t, "positive", res.Label)
}

func TestExtractTopLevelLabelWinsOverData(t *testing.T) {
	res, ok := extractLabelScore([]byte(`{"label":"positive","score":0.9,"data":[{"label":"negative","score":0.1}]}`))

	require.True(t, ok)
	assert.Equal(t, "positive", res.Label)
	assert.Equal(t, 0.9, res.Score)
}

func TestExtractUnusableDocuments(t *testing.T) {
	for _, doc := range []string{
		`not json`,
		`{}`,
		`[]`,
		`{"data":[]}`,
		`{"data":[42]}`,
		`{"output":42}`,
		`"just a string"`,
		`{"label":""}`,
		`{"label":"  "}`,
		`{"data":["   "]}`,
		`{"output":"\t"}`,
	} {
		_, ok := extractLabelScore([]byte(doc))
		assert.False(t, ok, "doc %s should not yield a result", doc)
	}
}
