// Package slash is the runtime half of slashgen: the wire data model for
// slash-command interactions, the builders used to describe command schemas,
// and the interfaces that generated code implements.
//
// Application code never implements these interfaces by hand; the slashgen
// tool emits the implementations from annotated type declarations.
package slash

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// OptionType identifies the kind of a command option. The numeric values
// match the Discord application-command API.
type OptionType int

const (
	TypeSubCommand      OptionType = 1
	TypeSubCommandGroup OptionType = 2
	TypeString          OptionType = 3
	TypeInteger         OptionType = 4
	TypeBoolean         OptionType = 5
	TypeUser            OptionType = 6
	TypeChannel         OptionType = 7
	TypeRole            OptionType = 8
	TypeMentionable     OptionType = 9
	TypeNumber          OptionType = 10
	TypeAttachment      OptionType = 11
)

// String returns the API name of the option type.
func (t OptionType) String() string {
	switch t {
	case TypeSubCommand:
		return "sub_command"
	case TypeSubCommandGroup:
		return "sub_command_group"
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeUser:
		return "user"
	case TypeChannel:
		return "channel"
	case TypeRole:
		return "role"
	case TypeMentionable:
		return "mentionable"
	case TypeNumber:
		return "number"
	case TypeAttachment:
		return "attachment"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Snowflake ID types carried by reference-kind options. They are plain
// strings so callers can hand them to any API client without conversion.
type (
	UserID        string
	ChannelID     string
	RoleID        string
	MentionableID string
	AttachmentID  string
)

// InteractionData is the relevant slice of a command interaction payload:
// the invoked command's name and its option list.
type InteractionData struct {
	ID      string       `json:"id,omitempty"`
	Name    string       `json:"name"`
	Options []OptionData `json:"options,omitempty"`
}

// OptionData is one named entry of an option list. For scalar kinds Value
// holds the typed value (string, int64, float64, bool, or a snowflake ID
// type); for sub-command and sub-command-group kinds the nested entries are
// in Options and Value is nil. Focused marks the single option currently
// being autocompleted; its Value is the raw, partially-typed text.
type OptionData struct {
	Name    string       `json:"name"`
	Type    OptionType   `json:"type"`
	Value   any          `json:"value,omitempty"`
	Options []OptionData `json:"options,omitempty"`
	Focused bool         `json:"focused,omitempty"`
}

// optionDataJSON mirrors OptionData with a raw value so UnmarshalJSON can
// decode Value according to Type.
type optionDataJSON struct {
	Name    string          `json:"name"`
	Type    OptionType      `json:"type"`
	Value   json.RawMessage `json:"value,omitempty"`
	Options []OptionData    `json:"options,omitempty"`
	Focused bool            `json:"focused,omitempty"`
}

// UnmarshalJSON decodes the wire value into the Go type dictated by the
// option's declared type. Focused options always carry the in-progress text
// as a string, whatever their declared type says.
func (o *OptionData) UnmarshalJSON(data []byte) error {
	var raw optionDataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Name = raw.Name
	o.Type = raw.Type
	o.Options = raw.Options
	o.Focused = raw.Focused
	o.Value = nil

	if len(raw.Value) == 0 {
		return nil
	}

	if raw.Focused {
		var s string
		if err := json.Unmarshal(raw.Value, &s); err != nil {
			return fmt.Errorf("decode focused option %q: %w", raw.Name, err)
		}
		o.Value = s
		return nil
	}

	switch raw.Type {
	case TypeString:
		var s string
		if err := json.Unmarshal(raw.Value, &s); err != nil {
			return fmt.Errorf("decode string option %q: %w", raw.Name, err)
		}
		o.Value = s
	case TypeInteger:
		var n json.Number
		if err := json.Unmarshal(raw.Value, &n); err != nil {
			return fmt.Errorf("decode integer option %q: %w", raw.Name, err)
		}
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("decode integer option %q: %w", raw.Name, err)
		}
		o.Value = i
	case TypeNumber:
		var f float64
		if err := json.Unmarshal(raw.Value, &f); err != nil {
			return fmt.Errorf("decode number option %q: %w", raw.Name, err)
		}
		o.Value = f
	case TypeBoolean:
		var b bool
		if err := json.Unmarshal(raw.Value, &b); err != nil {
			return fmt.Errorf("decode boolean option %q: %w", raw.Name, err)
		}
		o.Value = b
	case TypeUser, TypeChannel, TypeRole, TypeMentionable, TypeAttachment:
		var id string
		if err := json.Unmarshal(raw.Value, &id); err != nil {
			return fmt.Errorf("decode snowflake option %q: %w", raw.Name, err)
		}
		switch raw.Type {
		case TypeUser:
			o.Value = UserID(id)
		case TypeChannel:
			o.Value = ChannelID(id)
		case TypeRole:
			o.Value = RoleID(id)
		case TypeMentionable:
			o.Value = MentionableID(id)
		case TypeAttachment:
			o.Value = AttachmentID(id)
		}
	default:
		return fmt.Errorf("option %q: value present on %s option", raw.Name, raw.Type)
	}

	return nil
}

// Find returns the option with the given name, or nil.
func Find(options []OptionData, name string) *OptionData {
	for i := range options {
		if options[i].Name == name {
			return &options[i]
		}
	}
	return nil
}

// Focused returns the option marked as being autocompleted, searching one
// level deep only, or nil if no entry carries the marker.
func Focused(options []OptionData) *OptionData {
	for i := range options {
		if options[i].Focused {
			return &options[i]
		}
	}
	return nil
}
