package gormstore

import (
	"context"

	"gorm.io/gorm"

	"roundup/internal/models"
)

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Save(user).Error)
}

type accountRepo struct {
	db *gorm.DB
}

func (r *accountRepo) Create(ctx context.Context, account *models.Account) error {
	return translate(r.db.WithContext(ctx).Create(account).Error)
}

func (r *accountRepo) FindByUserID(ctx context.Context, userID string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *accountRepo) Update(ctx context.Context, account *models.Account) error {
	return translate(r.db.WithContext(ctx).Save(account).Error)
}

type transactionRepo struct {
	db *gorm.DB
}

func (r *transactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	return translate(r.db.WithContext(ctx).Create(tx).Error)
}

func (r *transactionRepo) ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").Order("created_at ASC").
		Find(&txs).Error
	if err != nil {
		return nil, translate(err)
	}
	return txs, nil
}

type goalRepo struct {
	db *gorm.DB
}

func (r *goalRepo) Create(ctx context.Context, goal *models.Goal) error {
	return translate(r.db.WithContext(ctx).Create(goal).Error)
}

func (r *goalRepo) FindByUserID(ctx context.Context, userID string) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, translate(err)
	}
	return &goal, nil
}

func (r *goalRepo) Update(ctx context.Context, goal *models.Goal) error {
	return translate(r.db.WithContext(ctx).Save(goal).Error)
}

type microInvestmentRepo struct {
	db *gorm.DB
}

func (r *microInvestmentRepo) Create(ctx context.Context, inv *models.MicroInvestment) error {
	return translate(r.db.WithContext(ctx).Create(inv).Error)
}

func (r *microInvestmentRepo) FindByID(ctx context.Context, id string) (*models.MicroInvestment, error) {
	var inv models.MicroInvestment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (r *microInvestmentRepo) ListByUserID(ctx context.Context, userID string) ([]models.MicroInvestment, error) {
	invs := []models.MicroInvestment{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&invs).Error
	if err != nil {
		return nil, translate(err)
	}
	return invs, nil
}

func (r *microInvestmentRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MicroInvestment{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
