package app

import (
	"bizbook/internal/query"
	"bizbook/internal/service"
)

// DirectoryView is the full frontend-facing state of one directory
// variant: the computed page plus every dialog state machine.
type DirectoryView struct {
	Result  query.Result         `json:"result"`
	Filters query.Options        `json:"filters"`
	Loading bool                 `json:"loading"`
	Editor  service.EditorState  `json:"editor"`
	Confirm service.ConfirmState `json:"confirm"`
	Status  service.StatusState  `json:"status"`
}
