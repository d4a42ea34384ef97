// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"path"
	"strings"
)

// staticFiles serves regular files below root. Directories resolve to their
// index.html; anything else that does not exist gets the JSON 404.
type staticFiles struct {
	root   http.Dir
	prefix string
}

func newStaticFiles(dir, prefix string) staticFiles {
	return staticFiles{root: http.Dir(dir), prefix: prefix}
}

func (s staticFiles) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		writeRouteError(w, msgEndpointNotFound, http.StatusNotFound)
		return
	}

	name := path.Clean("/" + strings.TrimPrefix(r.URL.Path, s.prefix))
	f, err := s.root.Open(name)
	if err != nil {
		writeRouteError(w, msgEndpointNotFound, http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeRouteError(w, msgEndpointNotFound, http.StatusNotFound)
		return
	}

	if info.IsDir() {
		index, err := s.root.Open(path.Join(name, "index.html"))
		if err != nil {
			writeRouteError(w, msgEndpointNotFound, http.StatusNotFound)
			return
		}
		defer index.Close()

		if info, err = index.Stat(); err != nil || info.IsDir() {
			writeRouteError(w, msgEndpointNotFound, http.StatusNotFound)
			return
		}
		f = index
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// publicPrefix normalizes a URL prefix to "/segment/.../".
func publicPrefix(prefix string) string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed + "/"
}
