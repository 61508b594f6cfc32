package golearapi

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Upload is a file sent as a multipart part.
type Upload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

type multipartBody struct {
	fields []formField
	files  []filePart
}

type formField struct{ name, value string }

type filePart struct {
	name   string
	upload Upload
}

func (b *multipartBody) field(name, value string) *multipartBody {
	b.fields = append(b.fields, formField{name: name, value: value})
	return b
}

func (b *multipartBody) file(name string, upload *Upload) *multipartBody {
	if upload != nil && upload.Data != nil {
		b.files = append(b.files, filePart{name: name, upload: *upload})
	}
	return b
}

func (b *multipartBody) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range b.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}
	for _, f := range b.files {
		header := make(textproto.MIMEHeader)
		filename := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(f.upload.Filename)
		if filename == "" {
			filename = f.name
		}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.name, filename))
		contentType := f.upload.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.upload.Data); err != nil {
			return nil, "", fmt.Errorf("copy %s: %w", f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
