package apierror

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The account service reports failures in one of two shapes:
//
//	{"message": "invalid credentials"}
//	{"detail": "registration failed"}
//	{"detail": [{"loc": ["body", "confirm_password"], "msg": "..."}, ...]}
//
// DecodePayload accepts all of them and degrades to a generic message when
// the body is empty, malformed, or carries neither key.
func DecodePayload(status int, body []byte) *Info {
	info := &Info{Status: status, Message: GenericMessage}
	if len(body) == 0 {
		return info
	}

	var payload struct {
		Message string          `json:"message"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return info
	}

	if msg := strings.TrimSpace(payload.Message); msg != "" {
		info.Message = msg
	}
	if len(payload.Detail) == 0 {
		return info
	}

	var detailText string
	if err := json.Unmarshal(payload.Detail, &detailText); err == nil {
		if msg := strings.TrimSpace(detailText); msg != "" {
			info.Message = msg
		}
		return info
	}

	var entries []struct {
		Loc []json.RawMessage `json:"loc"`
		Msg string            `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &entries); err != nil {
		return info
	}

	for _, entry := range entries {
		msg := strings.TrimSpace(entry.Msg)
		if msg == "" {
			continue
		}
		field := fieldFromLoc(entry.Loc)
		if field == "" {
			if info.Message == GenericMessage {
				info.Message = msg
			}
			continue
		}
		if info.Fields == nil {
			info.Fields = make(map[string]string)
		}
		if _, exists := info.Fields[field]; !exists {
			info.Fields[field] = msg
		}
	}

	if info.Message == GenericMessage {
		for _, entry := range entries {
			if msg := strings.TrimSpace(entry.Msg); msg != "" {
				info.Message = msg
				break
			}
		}
	}
	return info
}

// fieldFromLoc reduces a structured error path to the client field name.
// Wrapper segments and numeric indices are dropped, and the remaining
// server-side naming is translated to the names the validation engine uses.
func fieldFromLoc(loc []json.RawMessage) string {
	segments := make([]string, 0, len(loc))
	for _, raw := range loc {
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			segments = append(segments, text)
			continue
		}
		var index int
		if err := json.Unmarshal(raw, &index); err == nil {
			continue
		}
	}

	segments = dropWrapperSegments(segments)
	segments = stripNumericSegments(segments)
	if len(segments) == 0 {
		return ""
	}
	return canonicalFieldName(segments[len(segments)-1])
}

func dropWrapperSegments(segments []string) []string {
	wrappers := map[string]struct{}{
		"body":    {},
		"request": {},
		"payload": {},
		"data":    {},
		"query":   {},
	}
	out := segments
	for len(out) > 0 {
		if _, ok := wrappers[strings.ToLower(strings.TrimSpace(out[0]))]; ok {
			out = out[1:]
			continue
		}
		break
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

// canonicalFieldName maps wire names onto the draft field names so server and
// client errors land in the same slots.
func canonicalFieldName(name string) string {
	name = strings.TrimSpace(name)
	switch name {
	case "confirm_password":
		return "confirmPassword"
	case "date_of_birth":
		return "dateOfBirth"
	case "mobile_number":
		return "mobileNumber"
	case "first_name":
		return "firstName"
	case "last_name":
		return "lastName"
	default:
		return name
	}
}
