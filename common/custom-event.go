package common

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CustomEvent renders one server-sent event line. Unlike gin's sse render it
// writes the payload untouched, which the relay needs for verbatim chunk
// passthrough.
type CustomEvent struct {
	Event string
	Id    string
	Retry uint
	Data  interface{}
}

var contentType = []string{"text/event-stream"}
var noCache = []string{"no-cache"}

var dataReplacer = strings.NewReplacer(
	"\n", "\ndata:",
	"\r", "\\r")

func encode(writer io.Writer, event CustomEvent) error {
	return writeData(writer, event.Data)
}

func writeData(w io.Writer, data interface{}) error {
	_, _ = dataReplacer.WriteString(w, fmt.Sprint(data))
	if _, err := w.Write([]byte("\n\n")); err != nil {
		return err
	}
	return nil
}

func (r CustomEvent) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return encode(w, r)
}

func (r CustomEvent) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	header["Content-Type"] = contentType

	if _, exist := header["Cache-Control"]; !exist {
		header["Cache-Control"] = noCache
	}
}
