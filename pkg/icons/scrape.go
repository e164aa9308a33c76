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
	"bytes"
	"context"
	"fmt"

	"github.com/webapps-project/webapps-core/pkg/shared/httpclient"
	"golang.org/x/net/html"
)

// ScrapeIcons fetches the page at pageURL and collects every icon
// reference it declares: link rel="icon" hrefs and og:image meta
// contents. Values come back verbatim, relative hrefs included; the
// caller decides how to resolve them.
func ScrapeIcons(ctx context.Context, client *httpclient.Client, pageURL string) ([]string, error) {
	body, err := client.GetBytes(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var found []string
	for _, head := range elementsByTag(doc, "head") {
		headDoc, reparseErr := reparseInner(head)
		if reparseErr != nil {
			continue
		}

		for _, link := range elementsByTag(headDoc, "link") {
			if attrValue(link, "rel") != "icon" {
				continue
			}
			if href, ok := lookupAttr(link, "href"); ok {
				found = append(found, href)
			}
		}
		for _, meta := range elementsByTag(headDoc, "meta") {
			if attrValue(meta, "property") != "og:image" {
				continue
			}
			if content, ok := lookupAttr(meta, "content"); ok {
				found = append(found, content)
			}
		}
	}

	return found, nil
}

// elementsByTag collects every element with the given tag name,
// depth-first.
func elementsByTag(node *html.Node, tag string) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			matches = append(matches, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return matches
}

// reparseInner renders a node's children back to markup and parses the
// result as a standalone document, so each head is scanned in
// isolation even when heads are duplicated or nested.
func reparseInner(node *html.Node) (*html.Node, error) {
	var buf bytes.Buffer
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return nil, fmt.Errorf("failed to render head contents: %w", err)
		}
	}
	return html.Parse(&buf)
}

func lookupAttr(node *html.Node, name string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func attrValue(node *html.Node, name string) string {
	value, _ := lookupAttr(node, name)
	return value
}
