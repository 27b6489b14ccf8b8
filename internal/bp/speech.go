package bp

// Speech is one delivered speech in a round, either the human speaker's
// transcript or a generated one. The ordered list for a round is owned by
// the caller; nothing here survives a request.
type Speech struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	IsAI      bool   `json:"isAI"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// BySide filters speeches to one bench, preserving order.
func BySide(speeches []Speech, side Side) []Speech {
	var out []Speech
	for _, s := range speeches {
		if s.Role.Side() == side {
			out = append(out, s)
		}
	}
	return out
}

// FindUserSpeech returns the first non-AI speech matching role, falling back
// to any non-AI speech. The second return is false when the round has no
// human speech at all.
func FindUserSpeech(speeches []Speech, role Role) (Speech, bool) {
	for _, s := range speeches {
		if s.Role == role && !s.IsAI {
			return s, true
		}
	}
	for _, s := range speeches {
		if !s.IsAI {
			return s, true
		}
	}
	return Speech{}, false
}
