package business

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CustomValueKind identifies which variant of CustomValue is populated.
type CustomValueKind string

const (
	CustomValueScalar      CustomValueKind = "scalar"
	CustomValueList        CustomValueKind = "list"
	CustomValueRatedPlayer CustomValueKind = "rated_player"
)

// RatedPlayer is a federation rating record attached to a participant.
type RatedPlayer struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Federation string `json:"federation,omitempty"`
	Rating     *int   `json:"rating,omitempty"`
	Title      string `json:"title,omitempty"`
}

// CustomValue is one value of a participant's custom_data. Exactly one of
// Scalar, List or Player is meaningful, selected by Kind.
type CustomValue struct {
	Kind   CustomValueKind
	Scalar interface{} // string, float64, bool or nil
	List   []CustomValue
	Player *RatedPlayer
}

func ScalarValue(v interface{}) CustomValue { return CustomValue{Kind: CustomValueScalar, Scalar: v} }

func ListValue(items ...CustomValue) CustomValue {
	return CustomValue{Kind: CustomValueList, List: items}
}

func RatedPlayerValue(p RatedPlayer) CustomValue {
	return CustomValue{Kind: CustomValueRatedPlayer, Player: &p}
}

// String renders the value for comparisons and templates. Lists are
// comma-joined; rated players render as their player id.
func (v CustomValue) String() string {
	switch v.Kind {
	case CustomValueList:
		parts := make([]string, 0, len(v.List))
		for _, item := range v.List {
			parts = append(parts, item.String())
		}
		return strings.Join(parts, ", ")
	case CustomValueRatedPlayer:
		if v.Player == nil {
			return ""
		}
		return v.Player.PlayerID
	default:
		switch s := v.Scalar.(type) {
		case nil:
			return ""
		case string:
			return s
		case bool:
			return strconv.FormatBool(s)
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		default:
			return fmt.Sprint(s)
		}
	}
}

// Strings flattens the value into the strings a rule can be compared against.
// A rated player exposes its id, name, federation and title.
func (v CustomValue) Strings() []string {
	switch v.Kind {
	case CustomValueList:
		var out []string
		for _, item := range v.List {
			out = append(out, item.Strings()...)
		}
		return out
	case CustomValueRatedPlayer:
		if v.Player == nil {
			return nil
		}
		out := []string{v.Player.PlayerID, v.Player.Name}
		if v.Player.Federation != "" {
			out = append(out, v.Player.Federation)
		}
		if v.Player.Title != "" {
			out = append(out, v.Player.Title)
		}
		return out
	default:
		return []string{v.String()}
	}
}

func (v CustomValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case CustomValueList:
		list := v.List
		if list == nil {
			list = []CustomValue{}
		}
		return json.Marshal(list)
	case CustomValueRatedPlayer:
		return json.Marshal(v.Player)
	default:
		return json.Marshal(v.Scalar)
	}
}

// UnmarshalJSON picks the variant from the JSON shape: arrays are lists,
// objects carrying a player_id are rated players, anything else must be a scalar.
func (v *CustomValue) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty custom value")
	}
	switch trimmed[0] {
	case '[':
		var items []CustomValue
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*v = CustomValue{Kind: CustomValueList, List: items}
		return nil
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return err
		}
		if _, ok := probe["player_id"]; !ok {
			return fmt.Errorf("unsupported custom value object: expected a rated player with player_id")
		}
		var p RatedPlayer
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return fmt.Errorf("invalid rated player: %w", err)
		}
		*v = CustomValue{Kind: CustomValueRatedPlayer, Player: &p}
		return nil
	default:
		var s interface{}
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = CustomValue{Kind: CustomValueScalar, Scalar: s}
		return nil
	}
}

// CustomData is the decoded custom_data column of a participant.
type CustomData map[string]CustomValue

// ParseCustomData decodes a custom_data column; empty and null decode to an empty map.
func ParseCustomData(raw []byte) (CustomData, error) {
	out := CustomData{}
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("invalid custom_data: %w", err)
	}
	return out, nil
}

// Lookup finds a key case-insensitively.
func (d CustomData) Lookup(key string) (CustomValue, bool) {
	if v, ok := d[key]; ok {
		return v, true
	}
	for k, v := range d {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return CustomValue{}, false
}
