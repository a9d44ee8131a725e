package booking

import (
	"encoding/json"
	"strings"

	"anchor-gateway/internal/pkg/errs"
)

// StringList accepts the string-or-array ambiguity of untyped form/JSON
// input in one place. Browser forms send "nuts", the wizard sends
// ["nuts","gluten"]; both decode to the same type so call sites never
// branch on shape.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var many []string
		if err := json.Unmarshal(data, &many); err != nil {
			return errs.Wrap(err, "string list")
		}
		*s = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return errs.Wrap(err, "string list")
	}
	*s = StringList{one}
	return nil
}

// Normalized trims every entry, drops empties, and collapses an empty list
// to nil so the field is omitted from the outbound payload rather than sent
// as [] or "".
func (s StringList) Normalized() []string {
	var out []string
	for _, v := range s {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
