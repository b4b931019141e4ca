package domain

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Snapshot — сохранённая копия HTTP-ответа, лежащая в бакете кэша.
type Snapshot struct {
	Method   string      `json:"method"`
	URL      string      `json:"url"`
	Status   int         `json:"status"`
	Header   http.Header `json:"header"`
	Body     []byte      `json:"body"`
	StoredAt time.Time   `json:"stored_at"`
}

// NewSnapshot — вычитывает тело ответа целиком и закрывает его.
// После вызова resp.Body читать нельзя; для отдачи клиенту используйте Snapshot.Response.
func NewSnapshot(req *http.Request, resp *http.Response, now time.Time) (*Snapshot, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	return &Snapshot{
		Method:   method,
		URL:      req.URL.String(),
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: now,
	}, nil
}

// Clone — глубокая копия.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Header = s.Header.Clone()
	cp.Body = append([]byte(nil), s.Body...)
	return &cp
}

// Response — новый *http.Response с собственным телом; снимок не меняется.
func (s *Snapshot) Response(req *http.Request) *http.Response {
	header := s.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", s.Status, http.StatusText(s.Status)),
		StatusCode:    s.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(s.Body)),
		ContentLength: int64(len(s.Body)),
		Request:       req,
	}
}
