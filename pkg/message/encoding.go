package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
)

// fileImageField is both the form-part name and the filename placeholder
// for the binary image stream.
const fileImageField = "file_image"

// multipartHeaders is the fixed header set the legacy upload path
// expects, sent alongside the form boundary content type.
var multipartHeaders = map[string]string{
	"Accept":          "*/*",
	"Accept-Encoding": "gzip, deflate, br",
	"Connection":      "keep-alive",
	"User-Agent":      "qguild (+https://github.com/tinyland-inc/qguild)",
}

// Encoding is a ready-to-send request body with its transport headers.
// For JSON requests Body is the request itself; for multipart requests it
// is the rendered form bytes, replayable across a multi-identifier
// dispatch.
type Encoding struct {
	Body    any
	Headers map[string]string
}

// Encode selects the outbound encoding for a canonical request: a
// multipart form when a binary image stream is present, JSON otherwise.
// Encoding is a pure function of the request; it knows nothing about the
// target.
func Encode(req *MessageRequest) (*Encoding, error) {
	if req.FileImage == nil {
		return &Encoding{
			Body:    req,
			Headers: map[string]string{"Content-Type": "application/json"},
		}, nil
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields, err := wireFields(req)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if err := form.WriteField(f.key, f.value); err != nil {
			return nil, fmt.Errorf("writing form field %s: %w", f.key, err)
		}
	}

	part, err := form.CreateFormFile(fileImageField, fileImageField)
	if err != nil {
		return nil, fmt.Errorf("creating image part: %w", err)
	}
	if _, err := io.Copy(part, req.FileImage); err != nil {
		return nil, fmt.Errorf("reading image stream: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(multipartHeaders)+1)
	for k, v := range multipartHeaders {
		headers[k] = v
	}
	headers["Content-Type"] = form.FormDataContentType()

	return &Encoding{Body: buf.Bytes(), Headers: headers}, nil
}

type wireField struct {
	key   string
	value string
}

// wireFields flattens the set fields of a request into wire-cased form
// parts. Names come from the struct's JSON tags, so the form and JSON
// encodings always agree on casing. Non-string values are serialized as
// JSON part bodies.
func wireFields(req *MessageRequest) ([]wireField, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]wireField, 0, len(keys))
	for _, k := range keys {
		var s string
		if err := json.Unmarshal(m[k], &s); err == nil {
			out = append(out, wireField{key: k, value: s})
			continue
		}
		out = append(out, wireField{key: k, value: string(m[k])})
	}
	return out, nil
}
