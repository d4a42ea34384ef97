// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the click.storm51 site.
//
// It wires the chi router, the JSON handlers of every /api route and the
// middleware around them: request tracing, access logging, compression,
// CORS and per-IP rate limiting. Handlers decode the request, call the
// service layer and map its errors to French client messages.
package http
