package ports

import (
	"context"
	"net/http"
)

// Fetcher — выполнение HTTP-запроса к источнику. Ошибка означает сетевой сбой;
// любой полученный ответ (в том числе 4xx/5xx) возвращается без ошибки.
type Fetcher interface {
	Fetch(ctx context.Context, req *http.Request) (*http.Response, error)
}
