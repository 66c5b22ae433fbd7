package gtranslate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://translate.google.com"
	defaultLanguage = "en"

	// The endpoint rejects very long q parameters, so narrations are split
	// into sentence-aligned chunks and the MP3 payloads concatenated.
	maxChunkLen = 200
)

// Client synthesizes speech through the Google Translate TTS endpoint.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a TTS client.
func NewClient(baseURL, language string, timeout time.Duration, logger *slog.Logger) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	lang := strings.TrimSpace(language)
	if lang == "" {
		lang = defaultLanguage
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		language:   lang,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "gtranslate.client"),
	}
}

// Synthesize converts text to MP3 audio. Chunks are fetched sequentially and
// concatenated; MP3 frames are self-contained so the result plays as one clip.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	chunks := splitChunks(trimmed, maxChunkLen)
	var buf bytes.Buffer
	for i, chunk := range chunks {
		data, err := c.fetchChunk(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("synthesize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		buf.Write(data)
	}

	c.logger.Debug("speech synthesized", "chunks", len(chunks), "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (c *Client) fetchChunk(ctx context.Context, chunk string) ([]byte, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", c.language)
	query.Set("q", chunk)
	query.Set("textlen", strconv.Itoa(len(chunk)))
	endpoint := c.baseURL + "/translate_tts?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return nil, fmt.Errorf("tts request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	return io.ReadAll(resp.Body)
}

// splitChunks packs whole sentences into chunks of at most limit bytes. A
// single sentence longer than the limit is split on word boundaries instead.
func splitChunks(text string, limit int) []string {
	var chunks []string
	current := ""
	for _, sentence := range splitSentences(text) {
		if len(sentence) > limit {
			if current != "" {
				chunks = append(chunks, current)
				current = ""
			}
			chunks = append(chunks, splitWords(sentence, limit)...)
			continue
		}
		switch {
		case current == "":
			current = sentence
		case len(current)+1+len(sentence) <= limit:
			current += " " + sentence
		default:
			chunks = append(chunks, current)
			current = sentence
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

func splitSentences(text string) []string {
	words := strings.Fields(text)
	var sentences []string
	current := ""
	for _, word := range words {
		if current == "" {
			current = word
		} else {
			current += " " + word
		}
		if strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?") {
			sentences = append(sentences, current)
			current = ""
		}
	}
	if current != "" {
		sentences = append(sentences, current)
	}
	return sentences
}

func splitWords(sentence string, limit int) []string {
	words := strings.Fields(sentence)
	var parts []string
	current := ""
	for _, word := range words {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= limit:
			current += " " + word
		default:
			parts = append(parts, current)
			current = word
		}
	}
	if current != "" {
		parts = append(parts, current)
	}
	return parts
}
