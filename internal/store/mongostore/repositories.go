package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"roundup/internal/models"
	"roundup/internal/store"
)

// findOne decodes the first document matching filter into out.
func findOne(ctx context.Context, coll *mongo.Collection, filter bson.M, out any) error {
	return translate(coll.FindOne(ctx, filter).Decode(out))
}

// replaceByID overwrites the document with the given id.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

type userRepo struct {
	coll *mongo.Collection
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	user.Stamp(now())
	_, err := r.coll.InsertOne(ctx, user)
	return translate(err)
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := findOne(ctx, r.coll, bson.M{"_id": id}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := findOne(ctx, r.coll, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	user.Stamp(now())
	return replaceByID(ctx, r.coll, user.ID, user)
}

type accountRepo struct {
	coll *mongo.Collection
}

func (r *accountRepo) Create(ctx context.Context, account *models.Account) error {
	account.Stamp(now())
	_, err := r.coll.InsertOne(ctx, account)
	return translate(err)
}

func (r *accountRepo) FindByUserID(ctx context.Context, userID string) (*models.Account, error) {
	var account models.Account
	if err := findOne(ctx, r.coll, bson.M{"user_id": userID}, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) Update(ctx context.Context, account *models.Account) error {
	account.Stamp(now())
	return replaceByID(ctx, r.coll, account.ID, account)
}

type transactionRepo struct {
	coll *mongo.Collection
}

func (r *transactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	tx.Stamp(now())
	_, err := r.coll.InsertOne(ctx, tx)
	return translate(err)
}

func (r *transactionRepo) ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, translate(err)
	}
	txs := []models.Transaction{}
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, translate(err)
	}
	return txs, nil
}

type goalRepo struct {
	coll *mongo.Collection
}

func (r *goalRepo) Create(ctx context.Context, goal *models.Goal) error {
	goal.Stamp(now())
	_, err := r.coll.InsertOne(ctx, goal)
	return translate(err)
}

func (r *goalRepo) FindByUserID(ctx context.Context, userID string) (*models.Goal, error) {
	var goal models.Goal
	if err := findOne(ctx, r.coll, bson.M{"user_id": userID}, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepo) Update(ctx context.Context, goal *models.Goal) error {
	goal.Stamp(now())
	return replaceByID(ctx, r.coll, goal.ID, goal)
}

type microInvestmentRepo struct {
	coll *mongo.Collection
}

func (r *microInvestmentRepo) Create(ctx context.Context, inv *models.MicroInvestment) error {
	inv.Stamp(now())
	_, err := r.coll.InsertOne(ctx, inv)
	return translate(err)
}

func (r *microInvestmentRepo) FindByID(ctx context.Context, id string) (*models.MicroInvestment, error) {
	var inv models.MicroInvestment
	if err := findOne(ctx, r.coll, bson.M{"_id": id}, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *microInvestmentRepo) ListByUserID(ctx context.Context, userID string) ([]models.MicroInvestment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, translate(err)
	}
	invs := []models.MicroInvestment{}
	if err := cursor.All(ctx, &invs); err != nil {
		return nil, translate(err)
	}
	return invs, nil
}

func (r *microInvestmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
