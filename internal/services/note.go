package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/models"
)

var (
	// ErrNoteNotFound is returned when a note does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrNoteNotFound = errors.New("note not found")
)

// NoteReader defines read operations for notes, always scoped to an owner.
type NoteReader interface {
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.NoteDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.NoteDB, error)
}

// NoteWriter defines write operations for notes.
type NoteWriter interface {
	Save(ctx context.Context, ownerID int64, title, content string) (int64, error)
	Update(ctx context.Context, id, ownerID int64, title, content string) (bool, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NoteService handles ownership-scoped note CRUD and event publishing.
type NoteService struct {
	readRepo    NoteReader
	writeRepo   NoteWriter
	kafkaWriter KafkaWriter
}

// NewNoteService creates a new NoteService. A nil kafkaWriter disables
// event publishing.
func NewNoteService(readRepo NoteReader, writeRepo NoteWriter, kafkaWriter KafkaWriter) *NoteService {
	return &NoteService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a note mutation event to Kafka. Publishing is
// fire-and-forget: failures are logged, never surfaced to the caller.
func (s *NoteService) publishEvent(ctx context.Context, eventType string, noteID, ownerID int64) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.NoteEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		NoteID:    noteID,
		OwnerID:   ownerID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal note event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish note event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("note event published", "event_id", event.EventID, "type", eventType, "note_id", noteID)
	}
}

// List returns all notes owned by ownerID.
func (s *NoteService) List(ctx context.Context, ownerID int64) ([]models.NoteDB, error) {
	notes, err := s.readRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list notes", "ownerID", ownerID, "error", err)
		return nil, err
	}
	return notes, nil
}

// GetByID returns the note only when it exists and is owned by ownerID.
func (s *NoteService) GetByID(ctx context.Context, id, ownerID int64) (*models.NoteDB, error) {
	note, err := s.readRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get note", "id", id, "ownerID", ownerID, "error", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Add inserts a new note owned by ownerID and returns its id.
func (s *NoteService) Add(ctx context.Context, ownerID int64, title, content string) (int64, error) {
	id, err := s.writeRepo.Save(ctx, ownerID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to add note", "ownerID", ownerID, "error", err)
		return 0, err
	}

	s.publishEvent(ctx, models.NoteEventCreated, id, ownerID)
	return id, nil
}

// Update overwrites title and content of an owned note.
func (s *NoteService) Update(ctx context.Context, id, ownerID int64, title, content string) error {
	updated, err := s.writeRepo.Update(ctx, id, ownerID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to update note", "id", id, "ownerID", ownerID, "error", err)
		return err
	}
	if !updated {
		return ErrNoteNotFound
	}

	s.publishEvent(ctx, models.NoteEventUpdated, id, ownerID)
	return nil
}

// Delete removes an owned note.
func (s *NoteService) Delete(ctx context.Context, id, ownerID int64) error {
	deleted, err := s.writeRepo.Delete(ctx, id, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete note", "id", id, "ownerID", ownerID, "error", err)
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}

	s.publishEvent(ctx, models.NoteEventDeleted, id, ownerID)
	return nil
}
