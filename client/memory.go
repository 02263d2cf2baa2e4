package client

import "time"

type (
	// Memory is a single record stored on the memory server.
	Memory struct {
		ID        string    `json:"id" jsonschema_description:"Server-assigned identifier of the memory."`
		Content   string    `json:"content" jsonschema_description:"The stored memory text."`
		Namespace string    `json:"namespace,omitempty" jsonschema_description:"Partition the memory belongs to."`
		Topics    []string  `json:"topics,omitempty" jsonschema_description:"Topics the server extracted from the memory."`
		CreatedAt time.Time `json:"createdAt,omitzero" jsonschema_description:"When the memory was stored."`
	}

	// ScoredMemory holds a memory with its similarity score
	ScoredMemory struct {
		Memory *Memory `json:"memory" jsonschema_description:"The memory that was found"`
		Score  float64 `json:"score" jsonschema_description:"The similarity score of the memory to the query (0.0~1.0)"`
	}
)
