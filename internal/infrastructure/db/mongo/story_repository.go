package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storyweave/storyweave-api/internal/core/domain"
	"github.com/storyweave/storyweave-api/internal/core/ports"
)

const storiesCollection = "stories"

type StoryRepository struct {
	coll *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{coll: db.Collection(storiesCollection)}
}

// ownerFilter builds the base filter every story query starts from.
// A malformed id is treated the same as a missing document.
func ownerFilter(id, userID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStoryNotFound
	}
	return bson.M{"_id": oid, "user_id": userID}, nil
}

func (r *StoryRepository) Create(ctx context.Context, story *domain.Story) (*domain.Story, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *story
	doc.ID = "" // let Mongo assign the ObjectID

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert story: %w", err)
	}

	created := *story
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *StoryRepository) FindByID(ctx context.Context, id, userID string) (*domain.Story, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerFilter(id, userID)
	if err != nil {
		return nil, err
	}

	var s storyDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStoryNotFound
		}
		return nil, fmt.Errorf("find story: %w", err)
	}
	return s.toDomain(), nil
}

func (r *StoryRepository) List(ctx context.Context, filter ports.ListStoriesFilter) ([]*domain.Story, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": filter.UserID}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count stories: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list stories: %w", err)
	}
	defer cur.Close(ctx)

	var stories []*domain.Story
	for cur.Next(ctx) {
		var s storyDoc
		if err := cur.Decode(&s); err != nil {
			return nil, 0, fmt.Errorf("decode story: %w", err)
		}
		stories = append(stories, s.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list stories cursor: %w", err)
	}

	return stories, total, nil
}

func (r *StoryRepository) UpdateByID(ctx context.Context, id, userID string, input ports.UpdateStoryInput) (*domain.Story, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerFilter(id, userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.OriginalText != nil {
		set["original_text"] = *input.OriginalText
	}
	if input.SourceLang != nil {
		set["source_lang"] = *input.SourceLang
	}
	if input.TranslatedText != nil {
		set["translated_text"] = *input.TranslatedText
	}
	if input.TargetLang != nil {
		set["target_lang"] = *input.TargetLang
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var s storyDoc
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStoryNotFound
		}
		return nil, fmt.Errorf("update story: %w", err)
	}
	return s.toDomain(), nil
}

func (r *StoryRepository) DeleteByID(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete story: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStoryNotFound
	}
	return nil
}

// storyDoc mirrors domain.Story but keeps the ObjectID typed for decoding.
type storyDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	Title          string             `bson:"title"`
	OriginalText   string             `bson:"original_text"`
	SourceLang     string             `bson:"source_lang"`
	TranslatedText string             `bson:"translated_text,omitempty"`
	TargetLang     string             `bson:"target_lang,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d *storyDoc) toDomain() *domain.Story {
	return &domain.Story{
		ID:             d.ID.Hex(),
		UserID:         d.UserID,
		Title:          d.Title,
		OriginalText:   d.OriginalText,
		SourceLang:     d.SourceLang,
		TranslatedText: d.TranslatedText,
		TargetLang:     d.TargetLang,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
