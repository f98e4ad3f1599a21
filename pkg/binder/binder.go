package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
)

// MaxBodySize caps JSON request bodies at 1 MB.
const MaxBodySize = 1 << 20

// JSON decodes the request body into v. It requires an application/json
// content type, caps the body at MaxBodySize, rejects unknown fields so
// client typos fail loudly instead of being silently dropped, and rejects
// trailing data after the JSON document.
func JSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return errors.Join(ErrUnsupportedMediaType, errors.New("expected application/json"))
	}

	limited := io.LimitReader(r.Body, MaxBodySize+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return errors.Join(ErrInvalidBody, err)
	}
	if len(body) > MaxBodySize {
		return ErrBodyTooLarge
	}
	if len(body) == 0 {
		return errors.Join(ErrInvalidBody, errors.New("empty body"))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return errors.Join(ErrInvalidBody, errors.New("unexpected data after JSON document"))
	}

	return nil
}
