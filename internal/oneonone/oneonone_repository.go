package oneonone

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepository interface {
	CreateNote(ctx context.Context, n *OneOnOneNote) error
	GetNoteByID(ctx context.Context, id uuid.UUID) (*OneOnOneNote, error)
	GetNotes(ctx context.Context, filter ListFilter) ([]OneOnOneNote, error)
	UpdateNote(ctx context.Context, n *OneOnOneNote) error
	DeleteNote(ctx context.Context, id uuid.UUID) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) CreateNote(ctx context.Context, n *OneOnOneNote) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noteRepository) GetNoteByID(ctx context.Context, id uuid.UUID) (*OneOnOneNote, error) {
	var n OneOnOneNote
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *noteRepository) GetNotes(ctx context.Context, filter ListFilter) ([]OneOnOneNote, error) {
	var notes []OneOnOneNote
	query := r.db.WithContext(ctx)
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.InternID != nil {
		query = query.Where("intern_id = ?", *filter.InternID)
	}
	if filter.MentorID != nil {
		query = query.Where("mentor_id = ?", *filter.MentorID)
	}
	err := query.Order("meeting_date desc").Find(&notes).Error
	return notes, err
}

func (r *noteRepository) UpdateNote(ctx context.Context, n *OneOnOneNote) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *noteRepository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&OneOnOneNote{}, "id = ?", id).Error
}
