package repository

import (
	"context"
	"time"

	"eduhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	Coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Coll: db.Collection(model.UsersCollection)}
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	_, err := r.Coll.InsertOne(ctx, user)
	return translateErr(err)
}

func (r *UserRepository) FindByUserID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.Coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

// FindActiveStudents returns every student whose account is not deactivated.
func (r *UserRepository) FindActiveStudents(ctx context.Context) ([]model.User, error) {
	cur, err := r.Coll.Find(ctx, bson.M{"role": model.RoleStudent, "isActive": true})
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByRole(ctx context.Context, role model.UserRole) ([]model.User, error) {
	cur, err := r.Coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindJoinedSince returns users whose dateJoined is on or after cutoff.
func (r *UserRepository) FindJoinedSince(ctx context.Context, cutoff time.Time) ([]model.User, error) {
	cur, err := r.Coll.Find(ctx, bson.M{"dateJoined": bson.M{"$gte": cutoff}})
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// MaxDisplayID returns the highest userId among users of the given role.
func (r *UserRepository) MaxDisplayID(ctx context.Context, role model.UserRole) (string, error) {
	return maxDisplayID(ctx, r.Coll, "userId", bson.M{"role": role})
}

// UpdateProfile applies a partial $set of profile fields; only the supplied
// fields change.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, fields bson.M) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{"$set": fields})
	if err != nil {
		return 0, translateErr(err)
	}
	return res.ModifiedCount, nil
}

// Deactivate soft-deletes a user: isActive flips to false, the document
// stays retrievable by ID. Returns the matched count so a repeated
// deactivate still reports the user as found.
func (r *UserRepository) Deactivate(ctx context.Context, userID string) (int64, error) {
	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"isActive": false}},
	)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.MatchedCount, nil
}

// InsertMany bulk-loads fixture users; used by the seeder.
func (r *UserRepository) InsertMany(ctx context.Context, users []model.User) error {
	if len(users) == 0 {
		return nil
	}
	docs := make([]interface{}, len(users))
	for i := range users {
		docs[i] = users[i]
	}
	_, err := r.Coll.InsertMany(ctx, docs)
	return translateErr(err)
}
