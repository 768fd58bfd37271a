package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

type formField struct {
	key   string
	value string
}

type formFile struct {
	key      string
	filename string
	content  []byte
}

// Form is an ordered multipart form body: string fields first in the
// order they were added, then file parts. The server reads fields
// positionally for the method-override convention, so order matters.
type Form struct {
	fields []formField
	files  []formFile
}

func NewForm() *Form {
	return &Form{}
}

// Set appends a string field.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, formField{key: key, value: value})
	return f
}

// AddFile appends a file part with in-memory content.
func (f *Form) AddFile(key, filename string, content []byte) *Form {
	f.files = append(f.files, formFile{key: key, filename: filename, content: content})
	return f
}

// AddFilePath reads path and appends it as a file part.
func (f *Form) AddFilePath(key, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	f.AddFile(key, filepath.Base(path), content)
	return nil
}

// withMethodOverride returns a copy with a leading _method field, dropping
// any _method the caller set so the override is always the first part.
func (f *Form) withMethodOverride(method string) *Form {
	out := &Form{
		fields: make([]formField, 0, len(f.fields)+1),
		files:  f.files,
	}
	out.fields = append(out.fields, formField{key: "_method", value: method})
	for _, field := range f.fields {
		if field.key == "_method" {
			continue
		}
		out.fields = append(out.fields, field)
	}
	return out
}

// encode writes the multipart body and returns it with its content type.
func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, field := range f.fields {
		if err := mw.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", field.key, err)
		}
	}
	for _, file := range f.files {
		part, err := mw.CreateFormFile(file.key, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %s: %w", file.key, err)
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", fmt.Errorf("failed to write file part %s: %w", file.key, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
