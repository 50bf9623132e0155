package pageprofile

import (
	"bytes"
	"encoding/json"
)

// Entity labels consumed by the profile aggregator.
const (
	LabelEmail   = "email"
	LabelPhoneUS = "phone_us"
	LabelPhone   = "phone"
)

// ExtractedEntity is one value found by an external regex extraction strategy.
type ExtractedEntity struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Entities is an ordered list of extracted entities.
type Entities []ExtractedEntity

// First returns the value of the first entity with the given label.
func (e Entities) First(label string) (string, bool) {
	for _, entity := range e {
		if entity.Label == label {
			return entity.Value, true
		}
	}
	return "", false
}

// ParseEntities decodes an externally produced JSON array of entities.
// An empty payload means "no entities". Malformed JSON is a contract
// violation and returns EINVALID.
func ParseEntities(data []byte) (Entities, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var entities Entities
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, Errorf(EINVALID, "malformed extracted entities: %v", err)
	}
	return entities, nil
}
