// Package hadithcdn implements the hadith client against the static
// editions CDN, which serves whole collections as JSON documents keyed
// by "{lang}-{book}" edition names.
package hadithcdn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/service"
	"mihrab/internal/errors"
)

const defaultBaseURL = "https://cdn.jsdelivr.net/gh/fawazahmed0/hadith-api@1"

type editionsPayload map[string]struct {
	Name       string `json:"name"`
	Collection []struct {
		Name     string `json:"name"`
		Book     string `json:"book"`
		Language string `json:"language"`
	} `json:"collection"`
}

type bookPayload struct {
	Metadata struct {
		Name     string            `json:"name"`
		Sections map[string]string `json:"sections"`
	} `json:"metadata"`
	Hadiths []hadithPayload `json:"hadiths"`
}

type hadithPayload struct {
	// Hadith numbers are occasionally fractional on the CDN (e.g. 1127.5
	// for narrations inserted between two numbered ones); they are rounded
	// down when mapped to the domain.
	HadithNumber float64 `json:"hadithnumber"`
	Text         string  `json:"text"`
	Grades       []struct {
		Name  string `json:"name"`
		Grade string `json:"grade"`
	} `json:"grades"`
	Reference struct {
		Book int `json:"book"`
	} `json:"reference"`
}

// Client talks to the hadith editions CDN.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a hadith client from configuration.
func NewClient(cfg *config.Config) service.HadithClient {
	baseURL := defaultBaseURL
	timeout := config.DefaultUpstreamTimeout
	if cfg.Hadith != nil {
		if cfg.Hadith.BaseURL != "" {
			baseURL = cfg.Hadith.BaseURL
		}
		if cfg.Hadith.Timeout > 0 {
			timeout = cfg.Hadith.Timeout
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListBooks returns the collections that carry an English edition,
// sorted by key.
func (c *Client) ListBooks(ctx context.Context) ([]entity.HadithBook, error) {
	var payload editionsPayload
	if err := c.getJSON(ctx, "/editions.json", &payload); err != nil {
		return nil, err
	}

	books := make([]entity.HadithBook, 0, len(payload))
	for key, edition := range payload {
		hasEnglish := false
		for _, col := range edition.Collection {
			if col.Language == "English" {
				hasEnglish = true

				break
			}
		}
		if !hasEnglish {
			continue
		}

		books = append(books, entity.HadithBook{
			Key:  key,
			Name: edition.Name,
		})
	}

	sort.Slice(books, func(i, j int) bool { return books[i].Key < books[j].Key })

	return books, nil
}

// GetBook fetches a full collection. English text is required; the Arabic
// edition is best effort and skipped when the CDN has none.
func (c *Client) GetBook(ctx context.Context, book string) ([]entity.Hadith, error) {
	var english bookPayload
	if err := c.getJSON(ctx, "/editions/eng-"+book+".json", &english); err != nil {
		return nil, err
	}

	arabicByNumber := make(map[float64]string)
	var arabic bookPayload
	if err := c.getJSON(ctx, "/editions/ara-"+book+".json", &arabic); err == nil {
		for _, h := range arabic.Hadiths {
			arabicByNumber[h.HadithNumber] = h.Text
		}
	}

	hadiths := make([]entity.Hadith, 0, len(english.Hadiths))
	for _, h := range english.Hadiths {
		hadiths = append(hadiths, h.toEntity(english.Metadata.Sections, arabicByNumber[h.HadithNumber]))
	}

	return hadiths, nil
}

// GetHadith fetches one narration from a collection by number.
func (c *Client) GetHadith(ctx context.Context, book string, number int) (*entity.Hadith, error) {
	path := fmt.Sprintf("/editions/eng-%s/%d.json", book, number)

	var english bookPayload
	if err := c.getJSON(ctx, path, &english); err != nil {
		return nil, err
	}
	if len(english.Hadiths) == 0 {
		return nil, errors.Errorf("hadith: %s/%d has no content", book, number)
	}

	var arabicText string
	var arabic bookPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/editions/ara-%s/%d.json", book, number), &arabic); err == nil && len(arabic.Hadiths) > 0 {
		arabicText = arabic.Hadiths[0].Text
	}

	h := english.Hadiths[0].toEntity(english.Metadata.Sections, arabicText)

	return &h, nil
}

func (h hadithPayload) toEntity(sections map[string]string, arabic string) entity.Hadith {
	grades := make([]string, 0, len(h.Grades))
	for _, g := range h.Grades {
		grades = append(grades, g.Name+": "+g.Grade)
	}

	return entity.Hadith{
		Number:  int(h.HadithNumber),
		Text:    h.Text,
		Arabic:  arabic,
		Grades:  grades,
		Section: sections[strconv.Itoa(h.Reference.Book)],
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build hadith request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "hadith request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.Errorf("hadith: %s not found", path)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("hadith: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode hadith response")
	}

	return nil
}
