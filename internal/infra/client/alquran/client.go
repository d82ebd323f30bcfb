// Package alquran implements the Quran text client against the
// Al Quran Cloud REST API.
package alquran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/service"
	"mihrab/internal/errors"
)

const defaultBaseURL = "https://api.alquran.cloud/v1"

// ArabicEdition is the canonical Uthmani script edition used for the
// Arabic side of every verse pairing.
const ArabicEdition = "quran-uthmani"

type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type surahPayload struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

type ayahPayload struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Juz           int    `json:"juz"`
	Page          int    `json:"page"`
}

type surahDetailPayload struct {
	surahPayload
	Ayahs []ayahPayload `json:"ayahs"`
}

type searchPayload struct {
	Count   int `json:"count"`
	Matches []struct {
		Number        int    `json:"number"`
		Text          string `json:"text"`
		NumberInSurah int    `json:"numberInSurah"`
		Surah         struct {
			Number      int    `json:"number"`
			EnglishName string `json:"englishName"`
		} `json:"surah"`
		Edition struct {
			Identifier string `json:"identifier"`
		} `json:"edition"`
	} `json:"matches"`
}

// Client talks to the Al Quran Cloud API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Quran text client from configuration.
func NewClient(cfg *config.Config) service.QuranClient {
	baseURL := defaultBaseURL
	timeout := config.DefaultUpstreamTimeout
	if cfg.Quran != nil {
		if cfg.Quran.BaseURL != "" {
			baseURL = cfg.Quran.BaseURL
		}
		if cfg.Quran.Timeout > 0 {
			timeout = cfg.Quran.Timeout
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListSurahs returns metadata for all chapters.
func (c *Client) ListSurahs(ctx context.Context) ([]entity.Surah, error) {
	var payload []surahPayload
	if err := c.getJSON(ctx, "/surah", &payload); err != nil {
		return nil, err
	}

	surahs := make([]entity.Surah, 0, len(payload))
	for _, s := range payload {
		surahs = append(surahs, s.toEntity())
	}

	return surahs, nil
}

// GetSurah fetches one chapter in the given edition.
func (c *Client) GetSurah(ctx context.Context, number int, edition string) (*entity.SurahText, error) {
	var payload surahDetailPayload
	path := fmt.Sprintf("/surah/%d/%s", number, url.PathEscape(edition))
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}

	text := &entity.SurahText{
		Surah:   payload.toEntity(),
		Edition: edition,
		Ayahs:   make([]entity.Ayah, 0, len(payload.Ayahs)),
	}
	for _, a := range payload.Ayahs {
		text.Ayahs = append(text.Ayahs, entity.Ayah{
			Number:        a.Number,
			NumberInSurah: a.NumberInSurah,
			Text:          a.Text,
			Juz:           a.Juz,
			Page:          a.Page,
		})
	}

	return text, nil
}

// GetAyah fetches a single verse by surah and ayah number.
func (c *Client) GetAyah(ctx context.Context, surah, ayah int, edition string) (*entity.Ayah, error) {
	var payload ayahPayload
	path := fmt.Sprintf("/ayah/%d:%d/%s", surah, ayah, url.PathEscape(edition))
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}

	return &entity.Ayah{
		Number:        payload.Number,
		NumberInSurah: payload.NumberInSurah,
		Text:          payload.Text,
		Juz:           payload.Juz,
		Page:          payload.Page,
	}, nil
}

// Search runs a full-text search over one edition. Surah 0 searches all chapters.
func (c *Client) Search(ctx context.Context, query string, surah int, edition string) ([]entity.SearchMatch, error) {
	scope := "all"
	if surah > 0 {
		scope = fmt.Sprintf("%d", surah)
	}

	var payload searchPayload
	path := fmt.Sprintf("/search/%s/%s/%s", url.PathEscape(query), scope, url.PathEscape(edition))
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}

	matches := make([]entity.SearchMatch, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		matches = append(matches, entity.SearchMatch{
			Surah:         m.Surah.Number,
			SurahName:     m.Surah.EnglishName,
			NumberInSurah: m.NumberInSurah,
			Text:          m.Text,
			Edition:       m.Edition.Identifier,
		})
	}

	return matches, nil
}

func (s surahPayload) toEntity() entity.Surah {
	return entity.Surah{
		Number:                 s.Number,
		Name:                   s.Name,
		EnglishName:            s.EnglishName,
		EnglishNameTranslation: s.EnglishNameTranslation,
		NumberOfAyahs:          s.NumberOfAyahs,
		RevelationType:         s.RevelationType,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build quran request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "quran request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read quran response")
	}

	if resp.StatusCode == http.StatusNotFound {
		return errors.Errorf("quran: %s not found", path)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("quran: unexpected status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrap(err, "decode quran envelope")
	}
	if env.Code != http.StatusOK {
		return errors.Errorf("quran: upstream code %d (%s)", env.Code, env.Status)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode quran data")
	}

	return nil
}
