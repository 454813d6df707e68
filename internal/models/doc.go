// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Package models defines the JSON bodies of the HTTP API.

Successful responses are flat objects carrying "success": true next to their
payload fields. Every failure uses ErrorResponse:

	{"success": false, "error": {"code": "...", "message": "...", "request_id": "..."}}

The structs double as the schema source for the generated OpenAPI document,
so field tags and example values are kept in sync with the handlers.
*/
package models
