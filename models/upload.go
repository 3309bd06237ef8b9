// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadResponse is the body of POST /api/upload. The binary payload itself
// stays on the backend; the client only keeps this reference.
type UploadResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
	Kind string `json:"kind"`
}

// Attachment is a locally pending attachment reference attached to the
// message currently being composed. The list of pending attachments is
// cleared or pruned after every run.
type Attachment struct {
	ID   string
	Name string
	Size int64
	Kind string
}
