package usecase_test

import (
	"context"
	"io"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/log"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() log.Log {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return log.Log{AppName: "test", LogLevel: 2, Logger: logger}
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Insert(ctx context.Context, entry *entity.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func newTestAudit() *usecase.AuditTrail {
	auditRepo := new(MockAuditRepository)
	auditRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	return usecase.NewAuditTrail(newTestLogger(), auditRepo, nil)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, opts repository.ListOptions) ([]entity.User, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]entity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) List(ctx context.Context, opts repository.ListOptions) ([]entity.Transaction, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]entity.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) ListAll(ctx context.Context, limit int) ([]entity.Transaction, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

type MockPaymentLinkRepository struct {
	mock.Mock
}

func (m *MockPaymentLinkRepository) List(ctx context.Context, opts repository.ListOptions) ([]entity.PaymentLink, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]entity.PaymentLink), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentLinkRepository) FindByID(ctx context.Context, id string) (*entity.PaymentLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentLink), args.Error(1)
}

func (m *MockPaymentLinkRepository) Insert(ctx context.Context, link *entity.PaymentLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockPaymentLinkRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

type MockSupportTicketRepository struct {
	mock.Mock
}

func (m *MockSupportTicketRepository) List(ctx context.Context, opts repository.ListOptions) ([]entity.SupportTicket, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]entity.SupportTicket), args.Get(1).(int64), args.Error(2)
}

func (m *MockSupportTicketRepository) FindByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SupportTicket), args.Error(1)
}

func (m *MockSupportTicketRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context, opts repository.ListOptions) ([]entity.WalletTransaction, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]entity.WalletTransaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockWalletRepository) ListAllTransactions(ctx context.Context, limit int) ([]entity.WalletTransaction, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entity.WalletTransaction), args.Error(1)
}

func (m *MockWalletRepository) ListWallets(ctx context.Context, opts repository.ListOptions) ([]entity.Wallet, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]entity.Wallet), args.Get(1).(int64), args.Error(2)
}

type MockExportRepository struct {
	mock.Mock
}

func (m *MockExportRepository) ListRaw(ctx context.Context, collection string, limit int) ([]map[string]interface{}, error) {
	args := m.Called(ctx, collection, limit)
	return args.Get(0).([]map[string]interface{}), args.Error(1)
}
