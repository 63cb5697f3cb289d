package domain

// OverflowAction carries the fields of an overflow menu selection on a
// posted translation. The reply identity for deletion lives entirely in the
// action container; nothing is stored server-side.
type OverflowAction struct {
	Value     string
	ChannelID string
	MessageTS string
	ThreadTS  string
	UserID    string
}

// IsDeleteRequest reports whether the action is a well-formed deletion
// request. A missing field makes the whole action a silent no-op.
func (a OverflowAction) IsDeleteRequest() bool {
	return a.Value == "delete" &&
		a.ChannelID != "" &&
		a.MessageTS != "" &&
		a.ThreadTS != "" &&
		a.UserID != ""
}
