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

const usersCollection = "users"

// UserRepository is the Credential Store backed by the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// userDoc is the persisted shape. It is private so BSON field layout can
// change without touching the domain type.
type userDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	FirstName     string             `bson:"first_name"`
	LastName      string             `bson:"last_name"`
	BusinessName  string             `bson:"business_name,omitempty"`
	BusinessType  string             `bson:"business_type,omitempty"`
	Phone         string             `bson:"phone,omitempty"`
	Location      string             `bson:"location,omitempty"`
	EmailVerified bool               `bson:"email_verified"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		BusinessName:  d.BusinessName,
		BusinessType:  d.BusinessType,
		Phone:         d.Phone,
		Location:      d.Location,
		EmailVerified: d.EmailVerified,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// EnsureIndexes creates the unique email index. This index, not the
// application-level pre-check, is what closes the signup race.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// Create inserts a new account and returns it with the generated identifier.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		BusinessName:  user.BusinessName,
		BusinessType:  user.BusinessType,
		Phone:         user.Phone,
		Location:      user.Location,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateByID applies the provided mutable fields. The $set document is built
// field by field, so email, _id, password_hash and created_at can never be
// touched through this path regardless of what the caller sends.
func (r *UserRepository) UpdateByID(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if input.FirstName != nil {
		set["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		set["last_name"] = *input.LastName
	}
	if input.BusinessName != nil {
		set["business_name"] = *input.BusinessName
	}
	if input.BusinessType != nil {
		set["business_type"] = *input.BusinessType
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}
