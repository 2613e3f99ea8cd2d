package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/dmitrymomot/parambind/core"
	"github.com/dmitrymomot/parambind/pkg/parser"
)

// source produces the raw mapping of one location, or nil when the
// location carries nothing for the model.
type source interface {
	requestData(r *http.Request, api API, pathParams map[string]string, m *Model) (map[string]any, error)
}

type sourceFunc func(r *http.Request, api API, pathParams map[string]string, m *Model) (map[string]any, error)

func (f sourceFunc) requestData(r *http.Request, api API, pathParams map[string]string, m *Model) (map[string]any, error) {
	return f(r, api, pathParams, m)
}

var sources = map[Location]source{
	LocationQuery:  sourceFunc(queryData),
	LocationPath:   sourceFunc(pathData),
	LocationHeader: sourceFunc(headerData),
	LocationCookie: sourceFunc(cookieData),
	LocationBody:   sourceFunc(bodyData),
	LocationForm:   sourceFunc(formData),
	LocationFile:   sourceFunc(fileData),
}

func queryData(r *http.Request, api API, _ map[string]string, m *Model) (map[string]any, error) {
	data := apiParser(api).ParseQueryDict(parser.Values(r.URL.Query()), m.collection, m.aliases)

	// The nested struct resolves its own aliases, so raw keys are passed
	// through verbatim under the sole field. An empty query is wrapped too,
	// so inner defaults, required fields and Validate still apply.
	if m.nested != nil {
		return map[string]any{m.nested.WireName(): data}, nil
	}
	return data, nil
}

func pathData(_ *http.Request, _ API, pathParams map[string]string, _ *Model) (map[string]any, error) {
	if pathParams == nil {
		return nil, nil
	}
	data := make(map[string]any, len(pathParams))
	for k, v := range pathParams {
		data[k] = v
	}
	return data, nil
}

// headerData looks every field up by name first and by alias second.
// Collection fields receive every value of the header.
func headerData(r *http.Request, _ API, _ map[string]string, m *Model) (map[string]any, error) {
	data := make(map[string]any)
	for _, f := range m.schema.Fields {
		values := r.Header.Values(f.Name)
		if len(values) == 0 && f.Alias != "" {
			values = r.Header.Values(f.Alias)
		}
		if len(values) == 0 {
			continue
		}
		if f.Collection {
			data[f.Name] = values
		} else {
			data[f.Name] = values[len(values)-1]
		}
	}
	return data, nil
}

func cookieData(r *http.Request, _ API, _ map[string]string, _ *Model) (map[string]any, error) {
	data := make(map[string]any)
	for _, c := range r.Cookies() {
		data[c.Name] = c.Value
	}
	return data, nil
}

func bodyData(r *http.Request, api API, _ map[string]string, _ *Model) (map[string]any, error) {
	body, err := readBody(r, maxBodySize(api))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	data, err := apiParser(api).ParseBody(r, body)
	if err != nil {
		return nil, malformedBody(api, err)
	}
	return data, nil
}

// readBody reads at most limit bytes of the body and puts them back on the
// request so later models can read the body again.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, core.ErrRequestEntityTooLarge.
				WithMessage(fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)).
				Wrap(errors.Join(ErrBodyTooLarge, err))
		}
		return nil, core.ErrBadRequest.
			WithMessage("Cannot read request body").
			Wrap(errors.Join(ErrMalformedBody, err))
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func malformedBody(api API, err error) error {
	msg := "Cannot parse request body"
	if api != nil && api.Debug() {
		msg += " (" + err.Error() + ")"
	}
	return core.ErrBadRequest.WithMessage(msg).Wrap(errors.Join(ErrMalformedBody, err))
}

func formData(r *http.Request, api API, _ map[string]string, m *Model) (map[string]any, error) {
	if err := parseForm(r); err != nil {
		return nil, err
	}
	return apiParser(api).ParseQueryDict(parser.Values(r.PostForm), m.collection, m.aliases), nil
}

func fileData(r *http.Request, api API, _ map[string]string, m *Model) (map[string]any, error) {
	if !isMultipart(r) {
		return nil, nil
	}
	if err := parseForm(r); err != nil {
		return nil, err
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File) == 0 {
		return nil, nil
	}
	return apiParser(api).ParseQueryDict(sanitizedFiles(r.MultipartForm.File), m.collection, m.aliases), nil
}

// parseForm parses the request form once. Multipart bodies populate
// r.PostForm together with r.MultipartForm.
func parseForm(r *http.Request) error {
	var err error
	switch {
	case isMultipart(r):
		if r.MultipartForm == nil {
			err = r.ParseMultipartForm(parser.DefaultMaxMemory)
		}
	case r.PostForm == nil:
		err = r.ParseForm()
	}
	if err != nil {
		return core.ErrBadRequest.
			WithMessage("Cannot parse form data").
			Wrap(errors.Join(ErrMalformedForm, err))
	}
	return nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// sanitizedFiles returns copies of the file headers whose names carry no
// path components.
func sanitizedFiles(files map[string][]*multipart.FileHeader) parser.Files {
	out := make(parser.Files, len(files))
	for key, headers := range files {
		clean := make([]*multipart.FileHeader, len(headers))
		for i, fh := range headers {
			c := *fh
			c.Filename = sanitizeFilename(fh.Filename)
			clean[i] = &c
		}
		out[key] = clean
	}
	return out
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\x00", "")
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	switch name {
	case ".", "..", "/":
		return "unnamed"
	}
	return name
}
