package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type gzipReader struct {
	r  io.ReadCloser
	gz *gzip.Reader
}

func (g *gzipReader) Read(p []byte) (n int, err error) {
	return g.gz.Read(p)
}

func (g *gzipReader) Close() error {
	if err := g.gz.Close(); err != nil {
		g.r.Close()
		return err
	}
	return g.r.Close()
}

type gzipWriter struct {
	http.ResponseWriter
	w     *gzip.Writer
	wrote bool
}

func (g *gzipWriter) WriteHeader(code int) {
	g.ResponseWriter.Header().Del("Content-Length")
	g.ResponseWriter.WriteHeader(code)
}

func (g *gzipWriter) Write(p []byte) (int, error) {
	g.wrote = true
	return g.w.Write(p)
}

// GzipMiddleware unpacks gzip request bodies and compresses responses for
// clients that accept gzip. Preset bodies are JSON, so every response is
// compressible.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			gz, err := gzip.NewReader(r.Body)
			if err != nil {
				logrus.WithError(err).Error("Failed to create gzip reader")
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = &gzipReader{r: r.Body, gz: gz}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
		if err != nil {
			logrus.WithError(err).Error("Failed to create gzip writer")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")

		gzw := &gzipWriter{ResponseWriter: w, w: gz}
		next.ServeHTTP(gzw, r)

		// 204 and friends must stay bodiless.
		if gzw.wrote {
			if err := gz.Close(); err != nil {
				logrus.WithError(err).Error("Failed to close gzip writer")
			}
		}
	})
}
