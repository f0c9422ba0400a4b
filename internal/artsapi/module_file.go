// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package artsapi

import (
	"context"
	"net/http"

	"github.com/tomtom215/artsapi/internal/models/arts"
)

// FileAPI uploads user content.
type FileAPI interface {
	Upload(ctx context.Context, file LocalFile, filename string) (*arts.Response[arts.UploadResult], error)
}

var _ FileAPI = (*FileService)(nil)

// FileService implements FileAPI.
type FileService struct {
	c *Client
}

// Upload sends file as the multipart field "file". filename overrides the
// name carried by file.
func (s *FileService) Upload(ctx context.Context, file LocalFile, filename string) (*arts.Response[arts.UploadResult], error) {
	form, err := s.c.ToFormData(file, filename)
	if err != nil {
		return nil, err
	}
	return RequestJSON[arts.UploadResult](ctx, s.c, http.MethodPost, "/arts/file/upload", RequestOptions{Auth: AuthRequired, Form: form})
}
