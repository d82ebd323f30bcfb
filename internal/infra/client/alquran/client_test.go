package alquran

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
	cfg.Quran = &config.QuranConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}

	client, ok := NewClient(cfg).(*Client)
	require.True(t, ok)

	return client
}

func TestGetSurah(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah/1/quran-uthmani", r.URL.Path)
		w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"data": {
				"number": 1,
				"name": "سورة الفاتحة",
				"englishName": "Al-Faatiha",
				"englishNameTranslation": "The Opening",
				"numberOfAyahs": 7,
				"revelationType": "Meccan",
				"ayahs": [
					{"number": 1, "text": "بِسْمِ اللَّهِ", "numberInSurah": 1, "juz": 1, "page": 1},
					{"number": 2, "text": "الْحَمْدُ لِلَّهِ", "numberInSurah": 2, "juz": 1, "page": 1}
				]
			}
		}`))
	})

	surah, err := client.GetSurah(context.Background(), 1, ArabicEdition)
	require.NoError(t, err)

	assert.Equal(t, 1, surah.Number)
	assert.Equal(t, "Al-Faatiha", surah.EnglishName)
	assert.Equal(t, ArabicEdition, surah.Edition)
	require.Len(t, surah.Ayahs, 2)
	assert.Equal(t, 2, surah.Ayahs[1].NumberInSurah)
}

func TestListSurahs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah", r.URL.Path)
		w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"data": [
				{"number": 1, "englishName": "Al-Faatiha", "numberOfAyahs": 7, "revelationType": "Meccan"},
				{"number": 2, "englishName": "Al-Baqara", "numberOfAyahs": 286, "revelationType": "Medinan"}
			]
		}`))
	})

	surahs, err := client.ListSurahs(context.Background())
	require.NoError(t, err)
	require.Len(t, surahs, 2)
	assert.Equal(t, 286, surahs[1].NumberOfAyahs)
}

func TestSearchScopesSurah(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/mercy/2/en.sahih", r.URL.Path)
		w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"data": {
				"count": 1,
				"matches": [
					{
						"number": 9,
						"text": "...mercy...",
						"numberInSurah": 2,
						"surah": {"number": 2, "englishName": "Al-Baqara"},
						"edition": {"identifier": "en.sahih"}
					}
				]
			}
		}`))
	})

	matches, err := client.Search(context.Background(), "mercy", 2, "en.sahih")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Surah)
	assert.Equal(t, "Al-Baqara", matches[0].SurahName)
}

func TestGetAyahNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetAyah(context.Background(), 1, 999, ArabicEdition)
	assert.Error(t, err)
}

func TestUpstreamErrorCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 500, "status": "Internal Server Error", "data": null}`))
	})

	_, err := client.ListSurahs(context.Background())
	assert.Error(t, err)
}
