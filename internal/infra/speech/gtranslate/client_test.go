package gtranslate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSynthesizeSingleChunk(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		require.Equal(t, "/translate_tts", r.URL.Path)
		w.Write([]byte("mp3-data"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "en", time.Second, discardLogger())
	audio, err := client.Synthesize(context.Background(), "Weather report for Paris.")
	require.NoError(t, err)
	require.Equal(t, []byte("mp3-data"), audio)

	require.Equal(t, []string{"en"}, gotQuery["tl"])
	require.Equal(t, []string{"tw-ob"}, gotQuery["client"])
	require.Equal(t, []string{"Weather report for Paris."}, gotQuery["q"])
}

func TestSynthesizeConcatenatesChunksInOrder(t *testing.T) {
	var order []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		order = append(order, q)
		fmt.Fprintf(w, "[%d]", len(order))
	}))
	defer server.Close()

	long := strings.Repeat("This sentence fills the chunk with filler words for the test. ", 8)
	client := NewClient(server.URL, "en", time.Second, discardLogger())
	audio, err := client.Synthesize(context.Background(), long)
	require.NoError(t, err)

	require.Greater(t, len(order), 1, "long narration must split into several chunks")
	for _, chunk := range order {
		require.LessOrEqual(t, len(chunk), maxChunkLen)
		require.True(t, strings.HasSuffix(chunk, "."), "chunks end on sentence boundaries")
	}

	expected := ""
	for i := range order {
		expected += fmt.Sprintf("[%d]", i+1)
	}
	require.Equal(t, expected, string(audio))
}

func TestSynthesizeEmptyText(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "en", time.Second, discardLogger())
	_, err := client.Synthesize(context.Background(), "   ")
	require.Error(t, err)
}

func TestSynthesizeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "en", time.Second, discardLogger())
	_, err := client.Synthesize(context.Background(), "Weather report for Paris.")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=503")
}

func TestSplitChunksPacksSentences(t *testing.T) {
	chunks := splitChunks("One. Two. Three.", 20)
	require.Equal(t, []string{"One. Two. Three."}, chunks)

	chunks = splitChunks("First sentence here. Second sentence here.", 25)
	require.Equal(t, []string{"First sentence here.", "Second sentence here."}, chunks)
}

func TestSplitChunksHardSplitsOversizeSentence(t *testing.T) {
	sentence := strings.Repeat("word ", 20) + "end."
	chunks := splitChunks(sentence, 30)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		require.LessOrEqual(t, len(chunk), 30)
	}
	require.Equal(t, strings.Fields(sentence), strings.Fields(strings.Join(chunks, " ")))
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("Warning! It is cold. Stay indoors")
	require.Equal(t, []string{"Warning!", "It is cold.", "Stay indoors"}, sentences)
}
