package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// FileAttachment is a binary upload (thumbnail or question graphic)
// forwarded to the remote API as-is.
type FileAttachment struct {
	FieldName   string
	FileName    string
	ContentType string
	Reader      io.Reader
}

// postMultipart issues an authenticated multipart POST. Used whenever a
// form carries a file; plain forms go through sendJSON instead.
func (c *Client) postMultipart(ctx context.Context, token, path string, fields map[string]string, file *FileAttachment, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("encoding multipart field %s: %w", k, err)
		}
	}
	if file != nil {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, file.FieldName, file.FileName))
		if file.ContentType != "" {
			hdr.Set("Content-Type", file.ContentType)
		}
		part, err := w.CreatePart(hdr)
		if err != nil {
			return fmt.Errorf("creating multipart file part: %w", err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("copying attachment %s: %w", file.FileName, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, token, out)
}
