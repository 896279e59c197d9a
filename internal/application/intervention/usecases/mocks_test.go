package usecases

import (
	"context"

	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/intervention"
	"sitelog/internal/domain/user"
	"sitelog/internal/shared/logger"
)

type mockInterventionRepository struct {
	SaveFunc     func(ctx context.Context, i *intervention.Intervention) error
	UpdateFunc   func(ctx context.Context, i *intervention.Intervention) error
	DeleteFunc   func(ctx context.Context, id string) error
	FindByIDFunc func(ctx context.Context, id string) (*intervention.Intervention, error)
	ListFunc     func(ctx context.Context, filter intervention.Filter) ([]*intervention.Intervention, int64, error)
	GetStatsFunc func(ctx context.Context) (*intervention.Stats, error)
}

func (m *mockInterventionRepository) Save(ctx context.Context, i *intervention.Intervention) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockInterventionRepository) Update(ctx context.Context, i *intervention.Intervention) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockInterventionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockInterventionRepository) FindByID(ctx context.Context, id string) (*intervention.Intervention, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInterventionRepository) List(ctx context.Context, filter intervention.Filter) ([]*intervention.Intervention, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockInterventionRepository) GetStats(ctx context.Context) (*intervention.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return &intervention.Stats{}, nil
}

type mockAuditRepository struct {
	SaveFunc           func(ctx context.Context, l *audit.Log) error
	ListFunc           func(ctx context.Context, filter audit.Filter) ([]*audit.Log, int64, error)
	ListByEntityIDFunc func(ctx context.Context, entityType audit.EntityType, entityID string) ([]*audit.Log, error)
}

func (m *mockAuditRepository) Save(ctx context.Context, l *audit.Log) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

func (m *mockAuditRepository) List(ctx context.Context, filter audit.Filter) ([]*audit.Log, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAuditRepository) ListByEntityID(ctx context.Context, entityType audit.EntityType, entityID string) ([]*audit.Log, error) {
	if m.ListByEntityIDFunc != nil {
		return m.ListByEntityIDFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc      func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
