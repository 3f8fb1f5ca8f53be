// Package lambdahttp прокидывает события API Gateway (HTTP API, payload v2)
// в обычный http.Handler, чтобы в Lambda работал тот же роутер.
package lambdahttp

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

type Adapter struct {
	Handler http.Handler
}

func New(h http.Handler) *Adapter {
	return &Adapter{Handler: h}
}

func (a *Adapter) Handle(ctx context.Context, e events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	r, err := toRequest(ctx, e)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	w := newResponseWriter()
	a.Handler.ServeHTTP(w, r)

	return w.toResponse(), nil
}

func toRequest(ctx context.Context, e events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := []byte(e.Body)
	if e.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(e.Body)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	path := e.RawPath
	if path == "" {
		path = "/"
	}
	if e.RawQueryString != "" {
		path += "?" + e.RawQueryString
	}

	r, err := http.NewRequestWithContext(ctx, e.RequestContext.HTTP.Method, path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for k, v := range e.Headers {
		r.Header.Set(k, v)
	}
	if len(e.Cookies) > 0 {
		r.Header.Set("Cookie", strings.Join(e.Cookies, "; "))
	}
	if e.RequestContext.RequestID != "" && r.Header.Get("X-Request-ID") == "" {
		r.Header.Set("X-Request-ID", e.RequestContext.RequestID)
	}
	r.RemoteAddr = e.RequestContext.HTTP.SourceIP

	return r, nil
}

type responseWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: http.Header{}}
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *responseWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

func (w *responseWriter) toResponse() events.APIGatewayV2HTTPResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(w.header))
	for k, v := range w.header {
		if k == "Set-Cookie" {
			continue
		}
		headers[k] = strings.Join(v, ",")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Cookies:    w.header.Values("Set-Cookie"),
		Body:       w.body.String(),
	}
}
