package client

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"log/slog"
)

// Response is a gateway reply as received: status code and raw body.
// Nothing in this module decodes it unless the caller asks to.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) String() string {
	return string(r.Body)
}

func (r *Response) JSON(data any) error {
	return readJson(bytes.NewReader(r.Body), data)
}

func (r *Response) XML(data any) error {
	return xml.Unmarshal(r.Body, data)
}

func readJson(r io.Reader, data any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	slog.Debug("[JsonReader] Reading response", "size", len(body))
	return json.Unmarshal(body, data)
}
