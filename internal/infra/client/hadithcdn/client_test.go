package hadithcdn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mihrab/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Hadith = &config.HadithConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}

	client, ok := NewClient(cfg).(*Client)
	require.True(t, ok)

	return client
}

func TestListBooksFiltersEnglishEditions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/editions.json", r.URL.Path)
		w.Write([]byte(`{
			"muslim": {
				"name": "Sahih Muslim",
				"collection": [
					{"name": "ara-muslim", "book": "muslim", "language": "Arabic"},
					{"name": "eng-muslim", "book": "muslim", "language": "English"}
				]
			},
			"bukhari": {
				"name": "Sahih al Bukhari",
				"collection": [
					{"name": "ara-bukhari", "book": "bukhari", "language": "Arabic"},
					{"name": "eng-bukhari", "book": "bukhari", "language": "English"}
				]
			},
			"araonly": {
				"name": "Arabic Only Collection",
				"collection": [
					{"name": "ara-araonly", "book": "araonly", "language": "Arabic"}
				]
			}
		}`))
	})

	books, err := client.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)

	// Sorted by key.
	assert.Equal(t, "bukhari", books[0].Key)
	assert.Equal(t, "Sahih al Bukhari", books[0].Name)
	assert.Equal(t, "muslim", books[1].Key)
}

func TestGetBookPairsArabic(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/editions/eng-bukhari.json":
			w.Write([]byte(`{
				"metadata": {"name": "Sahih al Bukhari", "sections": {"1": "Revelation"}},
				"hadiths": [
					{"hadithnumber": 1, "text": "Actions are by intentions.", "grades": [{"name": "Zubair Ali Zai", "grade": "Sahih"}], "reference": {"book": 1}},
					{"hadithnumber": 2, "text": "Second narration.", "grades": [], "reference": {"book": 1}}
				]
			}`))
		case "/editions/ara-bukhari.json":
			w.Write([]byte(`{
				"metadata": {"name": "صحيح البخاري", "sections": {}},
				"hadiths": [
					{"hadithnumber": 1, "text": "إنما الأعمال بالنيات", "reference": {"book": 1}}
				]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	hadiths, err := client.GetBook(context.Background(), "bukhari")
	require.NoError(t, err)
	require.Len(t, hadiths, 2)

	assert.Equal(t, 1, hadiths[0].Number)
	assert.Equal(t, "Actions are by intentions.", hadiths[0].Text)
	assert.Equal(t, "إنما الأعمال بالنيات", hadiths[0].Arabic)
	assert.Equal(t, []string{"Zubair Ali Zai: Sahih"}, hadiths[0].Grades)
	assert.Equal(t, "Revelation", hadiths[0].Section)

	// No Arabic counterpart for number 2.
	assert.Empty(t, hadiths[1].Arabic)
}

func TestGetBookSurvivesMissingArabicEdition(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/editions/eng-nawawi.json" {
			w.Write([]byte(`{
				"metadata": {"name": "Forty Hadith of an-Nawawi", "sections": {}},
				"hadiths": [{"hadithnumber": 1, "text": "...", "reference": {"book": 0}}]
			}`))

			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	hadiths, err := client.GetBook(context.Background(), "nawawi")
	require.NoError(t, err)
	require.Len(t, hadiths, 1)
	assert.Empty(t, hadiths[0].Arabic)
}

func TestGetHadithMissingBook(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetHadith(context.Background(), "unknown", 1)
	assert.Error(t, err)
}
