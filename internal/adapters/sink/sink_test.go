package sink

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func cleaned() core.Dataset {
	return core.NewDataset(
		core.NewRecord("alice", "hello", time.Date(2021, 9, 1, 10, 0, 0, 0, time.UTC)),
		core.NewRecord("bob", "hi there", time.Date(2021, 9, 2, 8, 30, 0, 0, time.UTC)),
	)
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink(zaptest.NewLogger(t))

	_, ok := s.Last()
	assert.False(t, ok)

	ds := cleaned()
	require.NoError(t, s.Save(context.Background(), ds))

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 2, last.Len())
	assert.Equal(t, 1, s.Count())

	ds.Records[0].Author = "mallory"
	last, _ = s.Last()
	assert.Equal(t, "alice", last.Records[0].Author)
}

func TestMemorySink_CancelledContext(t *testing.T) {
	s := NewMemorySink(zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, cleaned()), context.Canceled)
	assert.Zero(t, s.Count())
}

func TestValidateTable(t *testing.T) {
	assert.NoError(t, validateTable("tweets"))
	assert.NoError(t, validateTable("_cleaned_2021"))
	assert.Error(t, validateTable(""))
	assert.Error(t, validateTable("1tweets"))
	assert.Error(t, validateTable("tweets; DROP TABLE x"))
}

func TestSQLiteSink_Save(t *testing.T) {
	s, err := NewSQLiteSink(filepath.Join(t.TempDir(), "cleaned.db"), "tweets", zaptest.NewLogger(t))
	require.NoError(t, err)
	defer s.Stop()

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, cleaned()))
	// a second save replaces rather than appends
	require.NoError(t, s.Save(ctx, cleaned()))

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM tweets").Scan(&count))
	assert.Equal(t, 2, count)

	var author, postDate string
	require.NoError(t, s.DB().QueryRow("SELECT author, post_date FROM tweets WHERE author = ?", "bob").Scan(&author, &postDate))
	assert.Equal(t, "bob", author)
	assert.Equal(t, "2021-09-02", postDate)
}

func TestSQLiteSink_InvalidTable(t *testing.T) {
	_, err := NewSQLiteSink(filepath.Join(t.TempDir(), "x.db"), "bad-name", zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestMySQLSink_InvalidTable(t *testing.T) {
	_, err := NewMySQLSink("user:pass@tcp(127.0.0.1:1)/db", "bad name", zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestSheetsSink_Save(t *testing.T) {
	var (
		mu      sync.Mutex
		methods []string
		written sheets.ValueRange
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		methods = append(methods, r.Method)
		if r.Method == http.MethodPut {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &written)
			assert.Equal(t, "RAW", r.URL.Query().Get("valueInputOption"))
		} else {
			assert.True(t, strings.HasSuffix(r.URL.Path, ":clear"), r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc, err := sheets.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	s, err := NewSheetsSinkWithService(svc, "sheet-id", "", zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), cleaned()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{http.MethodPost, http.MethodPut}, methods)
	require.Len(t, written.Values, 3)
	assert.Equal(t, []any{"Author", "Full Text", "Date", "Tweet_Date"}, written.Values[0])
	assert.Equal(t, []any{"alice", "hello", "2021-09-01 10:00:00", "2021-09-01"}, written.Values[1])
}

func TestSheetsSink_RequiresSpreadsheetID(t *testing.T) {
	_, err := NewSheetsSinkWithService(nil, "", "Cleaned", zaptest.NewLogger(t))
	assert.Error(t, err)
}
