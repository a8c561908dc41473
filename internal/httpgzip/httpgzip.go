// Package httpgzip compresses HTTP response bodies for clients that
// advertise gzip support in Accept-Encoding.
package httpgzip

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var writerPool = sync.Pool{
	New: func() interface{} {
		w, _ := gzip.NewWriterLevel(nil, gzip.BestSpeed)
		return w
	},
}

type compressedWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	plain       bool
}

// Only successful responses are compressed; error bodies pass through
// unchanged so their encoding never disagrees with the headers.
func (c *compressedWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	if statusCode < 300 {
		c.ResponseWriter.Header().Set("Content-Encoding", "gzip")
	} else {
		c.plain = true
	}
	c.ResponseWriter.WriteHeader(statusCode)
}

func (c *compressedWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.plain {
		return c.ResponseWriter.Write(p)
	}
	return c.zw.Write(p)
}

// close flushes the gzip stream only when something went through it;
// a handler that never wrote must not get trailing gzip framing bytes.
func (c *compressedWriter) close() error {
	var err error
	if c.wroteHeader && !c.plain {
		err = c.zw.Close()
	}
	writerPool.Put(c.zw)
	return err
}

// Response wraps h so that responses are gzip-compressed whenever the
// request's Accept-Encoding header contains "gzip".
func Response(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(w, r)
			return
		}

		zw := writerPool.Get().(*gzip.Writer)
		zw.Reset(w)
		cw := &compressedWriter{ResponseWriter: w, zw: zw}
		defer cw.close()

		h.ServeHTTP(cw, r)
	})
}
