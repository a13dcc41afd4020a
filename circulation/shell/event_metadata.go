package shell

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/libcirc/circulation-go/eventstore"
)

// ErrMappingToEventMetadataFailed is returned when a journal entry carries unreadable metadata.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// EventMetadata links a journal entry to the request that produced it.
// MessageID identifies the entry itself, CausationID the request that caused it, and
// CorrelationID groups the entries of one circulation workflow.
type EventMetadata struct {
	MessageID     string
	CausationID   string
	CorrelationID string
}

// BuildEventMetadata creates EventMetadata from three ids.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// NewCommandMetadata is the metadata of the one entry an engine request journals.
// The request starts its own workflow, so a single fresh id fills all three fields.
func NewCommandMetadata() EventMetadata {
	id := uuid.New()

	return BuildEventMetadata(id, id, id)
}

// EventMetadataFrom reads the metadata back from a journal entry.
func EventMetadataFrom(storableEvent eventstore.StorableEvent) (EventMetadata, error) {
	var metadata EventMetadata

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, &metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return metadata, nil
}
