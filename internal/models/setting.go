package models

import "time"

// Setting is a generic key-value configuration row. The only key in use today
// is the resume file path, but the table is deliberately schema-free.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingResumePath is the well-known key holding the current resume file path.
const SettingResumePath = "resume_path"
