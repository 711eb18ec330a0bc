package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateURLsStripsTrailingSlashAndAppendsKnownPaths(t *testing.T) {
	urls := candidateURLs("https://space.example.com/api/predict/")

	require.Equal(t, []string{
		"https://space.example.com/api/predict",
		"https://space.example.com/run/predict",
	}, urls)
}

func TestCandidateURLsDeduplicatesPreservingOrder(t *testing.T) {
	urls := candidateURLs("https://space.example.com/run/predict")

	require.Equal(t, []string{
		"https://space.example.com/run/predict",
		"https://space.example.com/api/predict",
	}, urls)
}

func TestCandidateURLsBaseWithoutKnownPath(t *testing.T) {
	urls := candidateURLs("https://space.example.com")

	require.Equal(t, []string{
		"https://space.example.com",
		"https://space.example.com/run/predict",
		"https://space.example.com/api/predict",
	}, urls)
}

func TestCandidateURLsUnparseableBase(t *testing.T) {
	urls := candidateURLs("not a url")

	// The raw base is still tried; no derived candidates.
	require.Equal(t, []string{"not a url"}, urls)
}

func TestCandidatePayloadsOrder(t *testing.T) {
	payloads := candidatePayloads("hello")

	require.Len(t, payloads, 2)
	assert.JSONEq(t, `{"inputs":"hello"}`, string(payloads[0]))
	assert.JSONEq(t, `{"data":["hello"]}`, string(payloads[1]))
}

func TestRootURL(t *testing.T) {
	assert.Equal(t, "https://space.example.com", rootURL("https://space.example.com/api/predict/"))
	assert.Equal(t, "http://localhost:7860", rootURL("http://localhost:7860/run/predict"))
	assert.Equal(t, "", rootURL("not a url"))
}
