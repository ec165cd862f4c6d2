package model

// UserValueType identifies one axis of the user-value rubric used when
// building evaluation prompts.
type UserValueType string

// User value constants.
const (
	ValueDurability    UserValueType = "durability"
	ValueEfficiency    UserValueType = "efficiency"
	ValueAesthetics    UserValueType = "aesthetics"
	ValueInterpersonal UserValueType = "interpersonal_value"
	ValueEmotional     UserValueType = "emotional_value"
)

// UserValueDescriptions holds the canonical description for each value type.
var UserValueDescriptions = map[UserValueType]string{
	ValueDurability:    "I value things that last several years.",
	ValueEfficiency:    "I value tools that save time for me.",
	ValueAesthetics:    "I value items that fit my existing environment's visual language.",
	ValueInterpersonal: "I value purchases that facilitate shared experiences.",
	ValueEmotional:     "I value purchases that provide meaningful emotional benefits.",
}
