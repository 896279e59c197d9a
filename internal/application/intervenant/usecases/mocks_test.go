package usecases

import (
	"context"

	"sitelog/internal/domain/intervenant"
	"sitelog/internal/shared/logger"
)

type mockIntervenantRepository struct {
	SaveFunc       func(ctx context.Context, i *intervenant.Intervenant) error
	UpdateFunc     func(ctx context.Context, i *intervenant.Intervenant) error
	DeleteFunc     func(ctx context.Context, id string) error
	FindByIDFunc   func(ctx context.Context, id string) (*intervenant.Intervenant, error)
	ListActiveFunc func(ctx context.Context, page, limit int) ([]*intervenant.Intervenant, int64, error)
}

func (m *mockIntervenantRepository) Save(ctx context.Context, i *intervenant.Intervenant) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockIntervenantRepository) Update(ctx context.Context, i *intervenant.Intervenant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIntervenantRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockIntervenantRepository) FindByID(ctx context.Context, id string) (*intervenant.Intervenant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIntervenantRepository) ListActive(ctx context.Context, page, limit int) ([]*intervenant.Intervenant, int64, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, page, limit)
	}
	return nil, 0, nil
}

type mockCompanyRepository struct {
	SaveFunc             func(ctx context.Context, c *intervenant.Company) error
	UpdateFunc           func(ctx context.Context, c *intervenant.Company) error
	DeleteFunc           func(ctx context.Context, id string) error
	FindByIDFunc         func(ctx context.Context, id string) (*intervenant.Company, error)
	ListFunc             func(ctx context.Context, page, limit int) ([]*intervenant.Company, int64, error)
	FindIntervenantsFunc func(ctx context.Context, companyID string) ([]*intervenant.Intervenant, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *intervenant.Company) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *intervenant.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id string) (*intervenant.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context, page, limit int) ([]*intervenant.Company, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit)
	}
	return nil, 0, nil
}

func (m *mockCompanyRepository) FindIntervenants(ctx context.Context, companyID string) ([]*intervenant.Intervenant, error) {
	if m.FindIntervenantsFunc != nil {
		return m.FindIntervenantsFunc(ctx, companyID)
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
