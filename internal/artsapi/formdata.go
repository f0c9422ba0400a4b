// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// formFileField is the only multipart field the upload endpoint reads.
const formFileField = "file"

// defaultUploadName is used when neither the caller nor the file supplies a name.
const defaultUploadName = "file"

// LocalFile is an upload source. It is one of FileBytes, PrebuiltForm or RemoteURI.
type LocalFile interface {
	isLocalFile()
}

// FileBytes is file content already in memory. An empty MIME is sniffed
// from the content.
type FileBytes struct {
	Data []byte
	Name string
	MIME string
}

// PrebuiltForm is a multipart body the caller already encoded. It is sent
// unchanged.
type PrebuiltForm struct {
	Body        []byte
	ContentType string // must carry the multipart boundary
}

// RemoteURI points at a file on the local filesystem, either as a file://
// URI or as a plain path. Other schemes are rejected.
type RemoteURI struct {
	URI  string
	Name string
	MIME string
}

func (FileBytes) isLocalFile()    {}
func (PrebuiltForm) isLocalFile() {}
func (RemoteURI) isLocalFile()    {}

// FormData is an encoded multipart/form-data body.
type FormData struct {
	Body        []byte
	ContentType string
}

// ToFormData normalizes file into a multipart body with a single "file"
// field. filename, when set, overrides the file's own name.
//
// Failures are returned as *Error of type client.
func ToFormData(file LocalFile, filename string) (*FormData, error) {
	switch f := file.(type) {
	case FileBytes:
		return encodeFileField(f.Data, firstNonEmpty(filename, f.Name, defaultUploadName), f.MIME)
	case *FileBytes:
		if f == nil {
			return nil, clientError("upload file is nil")
		}
		return ToFormData(*f, filename)
	case PrebuiltForm:
		return prebuiltFormData(f)
	case *PrebuiltForm:
		if f == nil {
			return nil, clientError("upload form is nil")
		}
		return prebuiltFormData(*f)
	case RemoteURI:
		return remoteURIFormData(f, filename)
	case *RemoteURI:
		if f == nil {
			return nil, clientError("upload uri is nil")
		}
		return remoteURIFormData(*f, filename)
	case nil:
		return nil, clientError("upload file is nil")
	default:
		return nil, clientError(fmt.Sprintf("unsupported upload file type %T", file))
	}
}

func prebuiltFormData(f PrebuiltForm) (*FormData, error) {
	mediaType, params, err := mime.ParseMediaType(f.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
		return nil, clientError("prebuilt form needs a multipart content type with a boundary")
	}
	return &FormData{Body: f.Body, ContentType: f.ContentType}, nil
}

func remoteURIFormData(f RemoteURI, filename string) (*FormData, error) {
	path, uriErr := localPathFromURI(f.URI)
	if uriErr != nil {
		return nil, uriErr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		e := clientError(fmt.Sprintf("failed to read upload file %s", path))
		e.Raw = err
		return nil, e
	}

	return encodeFileField(data, firstNonEmpty(filename, f.Name, filepath.Base(path)), f.MIME)
}

// localPathFromURI accepts file:// URIs and bare paths.
func localPathFromURI(uri string) (string, *Error) {
	if uri == "" {
		return "", clientError("upload uri is empty")
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// bare path, including Windows drive letters such as C:\
		return uri, nil
	}
	if u.Scheme != "file" {
		return "", clientError(fmt.Sprintf("unsupported upload uri scheme %q", u.Scheme))
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", clientError(fmt.Sprintf("upload uri host %q is not local", u.Host))
	}
	return u.Path, nil
}

// encodeFileField writes data as the "file" part of a new multipart body.
func encodeFileField(data []byte, name, contentType string) (*FormData, error) {
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		formFileField, quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		e := clientError("failed to create multipart part")
		e.Raw = err
		return nil, e
	}
	if _, err := part.Write(data); err != nil {
		e := clientError("failed to write multipart part")
		e.Raw = err
		return nil, e
	}
	if err := w.Close(); err != nil {
		e := clientError("failed to finish multipart body")
		e.Raw = err
		return nil, e
	}

	return &FormData{Body: buf.Bytes(), ContentType: w.FormDataContentType()}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func clientError(msg string) *Error {
	return &Error{Type: ErrorTypeClient, Message: msg}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
