// Package mongostore implements store.Store on MongoDB, one collection per
// model, with unique indexes on users.email, accounts.user_id and
// goals.user_id.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"roundup/internal/logger"
	"roundup/internal/store"
)

const (
	UserCollection            = "users"
	AccountCollection         = "accounts"
	TransactionCollection     = "transactions"
	GoalCollection            = "goals"
	MicroInvestmentCollection = "micro_investments"
)

// Store is a MongoDB-backed store.Store.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// Connect dials MongoDB, verifies the connection and ensures indexes.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	s := &Store{client: client, db: client.Database(database)}
	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Get().Infow("connected to MongoDB", "database", database)
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		AccountCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		GoalCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		TransactionCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		},
		MicroInvestmentCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("error creating indexes on %s: %w", name, err)
		}
	}
	return nil
}

// Ping asks the primary to respond.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		logger.Get().Errorw("failed to disconnect from MongoDB", "error", err)
		return err
	}
	logger.Get().Info("disconnected from MongoDB")
	return nil
}

func (s *Store) Users() store.UserRepository {
	return &userRepo{coll: s.db.Collection(UserCollection)}
}

func (s *Store) Accounts() store.AccountRepository {
	return &accountRepo{coll: s.db.Collection(AccountCollection)}
}

func (s *Store) Transactions() store.TransactionRepository {
	return &transactionRepo{coll: s.db.Collection(TransactionCollection)}
}

func (s *Store) Goals() store.GoalRepository {
	return &goalRepo{coll: s.db.Collection(GoalCollection)}
}

func (s *Store) MicroInvestments() store.MicroInvestmentRepository {
	return &microInvestmentRepo{coll: s.db.Collection(MicroInvestmentCollection)}
}

// translate maps driver errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicateKey, err)
	}
	return err
}

func now() time.Time {
	return time.Now().UTC()
}
