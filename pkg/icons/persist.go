// Webapps Core
// Copyright (c) 2025 The Webapps Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Webapps Core.
//
// Webapps Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Webapps Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Webapps Core.  If not, see <http://www.gnu.org/licenses/>.

package icons

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
	"github.com/webapps-project/webapps-core/pkg/helpers"
	"github.com/webapps-project/webapps-core/pkg/shared/httpclient"
)

// MoveIcon places the chosen icon into the managed MyIcons folder
// under <name-without-spaces>.<ext> and returns the destination path.
// URL sources are downloaded, local sources copied. A source already
// sitting at its destination is left alone.
func (p *Pipeline) MoveIcon(ctx context.Context, source, outputName string) (string, error) {
	userIcons := p.cfg.UserIconsDir()
	if err := os.MkdirAll(userIcons, 0o750); err != nil {
		return "", fmt.Errorf("cannot create user icons dir: %w", err)
	}

	name := strings.ReplaceAll(outputName, " ", "")

	if helpers.URLValid(source) {
		return p.downloadIcon(ctx, source, userIcons, name)
	}

	ext := strings.TrimPrefix(filepath.Ext(source), ".")
	if IsSVG(source) {
		ext = "svg"
	}
	if ext == "" {
		ext = sniffExtension(source)
	}
	if ext == "" {
		return "", fmt.Errorf("cannot determine icon format: %s", source)
	}

	savePath := filepath.Join(userIcons, name+"."+ext)
	if strings.Contains(source, savePath) || helpers.SamePath(source, savePath) {
		return savePath, nil
	}
	if err := helpers.CopyFile(source, savePath); err != nil {
		return "", fmt.Errorf("failed to copy icon: %w", err)
	}
	return savePath, nil
}

// downloadIcon fetches a remote icon. Sources with a clear extension
// stream straight to disk; extensionless and ICO payloads go through
// memory for sniffing and PNG normalization.
func (p *Pipeline) downloadIcon(ctx context.Context, source, dir, name string) (string, error) {
	ext := urlExtension(source)

	if ext != "" && ext != "ico" {
		savePath := filepath.Join(dir, name+"."+ext)
		err := p.client.DownloadFile(ctx, httpclient.DownloadFileArgs{
			URL:        source,
			OutputPath: savePath,
			TempPath:   savePath + ".part",
		})
		if err != nil {
			return "", fmt.Errorf("failed to download icon: %w", err)
		}
		return savePath, nil
	}

	data, err := p.client.GetBytes(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to download icon: %w", err)
	}

	if ext == "" {
		kind, matchErr := filetype.Match(data)
		if matchErr != nil || kind == filetype.Unknown {
			return "", fmt.Errorf("cannot determine icon format: %s", source)
		}
		ext = kind.Extension
	}

	if ext == "ico" {
		if png, convErr := ConvertICOToPNG(data); convErr == nil {
			data = png
			ext = "png"
		} else {
			log.Warn().Err(convErr).Msgf("keeping original ico: %s", source)
		}
	}

	savePath := filepath.Join(dir, name+"."+ext)
	if err := os.WriteFile(savePath, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to save icon: %w", err)
	}
	return savePath, nil
}

// sniffExtension reads the sniffing prefix of a local file and matches
// it against known signatures.
func sniffExtension(path string) string {
	file, err := os.Open(path) // #nosec G304 - path was chosen by the user
	if err != nil {
		return ""
	}
	defer func() {
		_ = file.Close()
	}()

	head := make([]byte, 261)
	n, _ := io.ReadFull(file, head)

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.Extension
}

func urlExtension(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(filepath.Ext(parsed.Path), ".")
}
