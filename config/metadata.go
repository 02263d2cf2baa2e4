package config

import (
	"maps"
	"slices"
)

type (
	// FieldDescriptor describes one configuration field for an external
	// configuration-editing UI. It carries no validation logic.
	FieldDescriptor struct {
		// Label is the human-readable field name.
		Label string `json:"label"`
		// Placeholder is example text shown in an empty input.
		Placeholder string `json:"placeholder,omitempty"`
		// Help is a short explanation rendered next to the field.
		Help string `json:"help,omitempty"`
		// Sensitive fields are masked when displayed.
		Sensitive bool `json:"sensitive,omitempty"`
		// Advanced fields are hidden behind progressive disclosure.
		Advanced bool `json:"advanced,omitempty"`
		// Multiline fields are edited in a text area rather than a single line.
		Multiline bool `json:"multiline,omitempty"`
		// Options lists the allowed values for enum fields, in display order.
		Options []FieldOption `json:"options,omitempty"`
	}

	FieldOption struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
)

var fieldDescriptors = map[string]FieldDescriptor{
	"serverUrl": {
		Label:       "Server URL",
		Placeholder: DefaultServerURL,
		Help:        "Base URL of the agent memory server. Supports ${VAR} placeholders, e.g. ${AGENT_MEMORY_SERVER_URL}.",
	},
	"apiKey": {
		Label:       "API key",
		Placeholder: "${AGENT_MEMORY_API_KEY}",
		Help:        "API key for the memory server, sent as the X-API-Key header.",
		Sensitive:   true,
	},
	"bearerToken": {
		Label:     "Bearer token",
		Help:      "OAuth bearer token, sent as the Authorization header. Use either this or the API key.",
		Sensitive: true,
		Advanced:  true,
	},
	"namespace": {
		Label:    "Namespace",
		Help:     "Partition label for memories stored by this client. Leave empty for the server default.",
		Advanced: true,
	},
	"timeout": {
		Label:       "Request timeout (ms)",
		Placeholder: "30000",
		Help:        "How long to wait for the memory server before giving up.",
		Advanced:    true,
	},
	"autoCapture": {
		Label: "Auto-capture",
		Help:  "Automatically extract memories from conversations.",
	},
	"autoRecall": {
		Label: "Auto-recall",
		Help:  "Automatically recall relevant memories into context.",
	},
	"minScore": {
		Label:       "Minimum score",
		Placeholder: "0.3",
		Help:        "Similarity threshold for recalled memories, between 0 and 1.",
		Advanced:    true,
	},
	"recallLimit": {
		Label:       "Recall limit",
		Placeholder: "3",
		Help:        "Maximum number of memories recalled per query.",
		Advanced:    true,
	},
	"extractionStrategy": {
		Label: "Extraction strategy",
		Help:  "How conversations are condensed into memory records.",
		Options: []FieldOption{
			{Value: string(ExtractionDiscrete), Label: "Discrete memories"},
			{Value: string(ExtractionSummary), Label: "Running summary"},
			{Value: string(ExtractionPreferences), Label: "User preferences"},
			{Value: string(ExtractionCustom), Label: "Custom prompt"},
		},
	},
	"customPrompt": {
		Label:     "Custom extraction prompt",
		Help:      "Prompt used to extract memories when the strategy is custom.",
		Advanced:  true,
		Multiline: true,
	},
}

// Describe returns the UI descriptor for a recognized field name.
func Describe(field string) (FieldDescriptor, bool) {
	desc, ok := fieldDescriptors[field]
	return desc, ok
}

// Fields returns the full field-name to descriptor mapping for UI
// generation. The returned map is a copy.
func Fields() map[string]FieldDescriptor {
	return maps.Clone(fieldDescriptors)
}

// FieldNames returns the recognized field names in UI order.
func FieldNames() []string {
	return slices.Clone(memoryConfigFields)
}
