package slash

// Builders and decoders for the built-in option kinds. Generated code calls
// these for fields of primitive and snowflake types; custom option types
// implement the Option interface instead.

// StringOption builds a required string option schema.
func StringOption(name, description string) *OptionBuilder {
	return NewOption(TypeString, name, description).Required(true)
}

// IntOption builds a required integer option schema.
func IntOption(name, description string) *OptionBuilder {
	return NewOption(TypeInteger, name, description).Required(true)
}

// NumberOption builds a required number option schema.
func NumberOption(name, description string) *OptionBuilder {
	return NewOption(TypeNumber, name, description).Required(true)
}

// BoolOption builds a required boolean option schema.
func BoolOption(name, description string) *OptionBuilder {
	return NewOption(TypeBoolean, name, description).Required(true)
}

// UserOption builds a required user-reference option schema.
func UserOption(name, description string) *OptionBuilder {
	return NewOption(TypeUser, name, description).Required(true)
}

// ChannelOption builds a required channel-reference option schema.
func ChannelOption(name, description string) *OptionBuilder {
	return NewOption(TypeChannel, name, description).Required(true)
}

// RoleOption builds a required role-reference option schema.
func RoleOption(name, description string) *OptionBuilder {
	return NewOption(TypeRole, name, description).Required(true)
}

// MentionableOption builds a required mentionable-reference option schema.
func MentionableOption(name, description string) *OptionBuilder {
	return NewOption(TypeMentionable, name, description).Required(true)
}

// AttachmentOption builds a required attachment option schema.
func AttachmentOption(name, description string) *OptionBuilder {
	return NewOption(TypeAttachment, name, description).Required(true)
}

// decodeValue is the shared required-option decode path: missing entry,
// kind check, then value extraction. A focused entry carries raw text, so
// it only ever satisfies a string decode.
func decodeValue[T any](opt *OptionData, want OptionType) (T, error) {
	var zero T
	if opt == nil {
		return zero, ErrMissingRequiredOption
	}
	if opt.Focused {
		if want != TypeString {
			return zero, &OptionTypeError{Got: TypeString, Expected: want}
		}
	} else if opt.Type != want {
		return zero, &OptionTypeError{Got: opt.Type, Expected: want}
	}
	v, ok := opt.Value.(T)
	if !ok {
		return zero, &OptionTypeError{Got: opt.Type, Expected: want}
	}
	return v, nil
}

// DecodeString extracts a required string value.
func DecodeString(opt *OptionData) (string, error) {
	return decodeValue[string](opt, TypeString)
}

// DecodeInt extracts a required integer value.
func DecodeInt(opt *OptionData) (int64, error) {
	return decodeValue[int64](opt, TypeInteger)
}

// DecodeNumber extracts a required number value.
func DecodeNumber(opt *OptionData) (float64, error) {
	return decodeValue[float64](opt, TypeNumber)
}

// DecodeBool extracts a required boolean value.
func DecodeBool(opt *OptionData) (bool, error) {
	return decodeValue[bool](opt, TypeBoolean)
}

// DecodeUser extracts a required user reference.
func DecodeUser(opt *OptionData) (UserID, error) {
	return decodeValue[UserID](opt, TypeUser)
}

// DecodeChannel extracts a required channel reference.
func DecodeChannel(opt *OptionData) (ChannelID, error) {
	return decodeValue[ChannelID](opt, TypeChannel)
}

// DecodeRole extracts a required role reference.
func DecodeRole(opt *OptionData) (RoleID, error) {
	return decodeValue[RoleID](opt, TypeRole)
}

// DecodeMentionable extracts a required mentionable reference.
func DecodeMentionable(opt *OptionData) (MentionableID, error) {
	return decodeValue[MentionableID](opt, TypeMentionable)
}

// DecodeAttachment extracts a required attachment reference.
func DecodeAttachment(opt *OptionData) (AttachmentID, error) {
	return decodeValue[AttachmentID](opt, TypeAttachment)
}

// Alloc points dst at a fresh T and returns it. Generated parsers use it
// to fill variant fields whose type is an anonymous struct, which cannot
// be repeated at the assignment site.
func Alloc[T any](dst **T) *T {
	*dst = new(T)
	return *dst
}

// Optional wraps a required decoder for pointer-typed (optional) fields: an
// absent entry yields nil rather than ErrMissingRequiredOption.
func Optional[T any](decode func(*OptionData) (T, error), opt *OptionData) (*T, error) {
	if opt == nil {
		return nil, nil
	}
	v, err := decode(opt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
