package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"sitelog/internal/domain/intervention"
	"sitelog/internal/infrastructure/persistence/mappers"
	"sitelog/internal/infrastructure/persistence/models"
	"sitelog/internal/shared/errors"
)

// allowedInterventionSortFields maps the API sort keys onto real column
// names. Anything outside this map falls back to the default ordering.
var allowedInterventionSortFields = map[string]string{
	"createdat":  "created_at",
	"updatedat":  "updated_at",
	"dateref":    "date_ref",
	"titre":      "titre",
	"centrale":   "centrale",
	"equipement": "equipement",
}

type InterventionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InterventionMapper
}

func NewInterventionRepository(db *gorm.DB) intervention.Repository {
	return &InterventionRepositoryImpl{
		db:     db,
		mapper: mappers.NewInterventionMapper(),
	}
}

func (r *InterventionRepositoryImpl) Save(ctx context.Context, i *intervention.Intervention) error {
	model := r.mapper.ToModel(i)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create intervention: %w", err)
	}

	return nil
}

func (r *InterventionRepositoryImpl) Update(ctx context.Context, i *intervention.Intervention) error {
	model := r.mapper.ToModel(i)

	// Save writes every column so cleared optional fields are persisted
	// as NULL instead of being skipped.
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update intervention: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("intervention not found")
	}

	return nil
}

func (r *InterventionRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InterventionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete intervention: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("intervention not found")
	}

	return nil
}

func (r *InterventionRepositoryImpl) FindByID(ctx context.Context, id string) (*intervention.Intervention, error) {
	var model models.InterventionModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find intervention by id: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InterventionRepositoryImpl) List(ctx context.Context, filter intervention.Filter) ([]*intervention.Intervention, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InterventionModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count interventions: %w", err)
	}

	query = query.Order(interventionOrderClause(filter.SortBy, filter.SortOrder))

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.Limit)
	}

	var interventionModels []*models.InterventionModel
	if err := query.Find(&interventionModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list interventions: %w", err)
	}

	result := make([]*intervention.Intervention, 0, len(interventionModels))
	for _, model := range interventionModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map intervention model: %w", err)
		}
		result = append(result, entity)
	}

	return result, total, nil
}

func (r *InterventionRepositoryImpl) applyFilter(query *gorm.DB, filter intervention.Filter) *gorm.DB {
	if filter.Centrale != "" {
		query = query.Where("centrale = ?", filter.Centrale)
	}
	if filter.Equipement != "" {
		query = query.Where("equipement = ?", filter.Equipement)
	}
	if filter.TypeEvenement != "" {
		// Event types are stored as a JSON array of strings; matching the
		// quoted value keeps the lookup portable across MySQL and SQLite.
		query = query.Where("type_evenement LIKE ?", "%"+jsonStringPattern(filter.TypeEvenement)+"%")
	}
	if filter.TypeDysfonctionnement != "" {
		query = query.Where("type_dysfonctionnement LIKE ?", "%"+jsonStringPattern(filter.TypeDysfonctionnement)+"%")
	}
	if filter.DateRefFrom != nil {
		query = query.Where("date_ref >= ?", filter.DateRefFrom.UnixMilli())
	}
	if filter.DateRefTo != nil {
		query = query.Where("date_ref <= ?", filter.DateRefTo.UnixMilli())
	}
	if filter.IsArchived != nil {
		query = query.Where("is_archived = ?", *filter.IsArchived)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(titre) LIKE ? OR LOWER(centrale) LIKE ? OR LOWER(equipement) LIKE ? OR LOWER(commentaires) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return query
}

func interventionOrderClause(sortBy, sortOrder string) string {
	column, ok := allowedInterventionSortFields[strings.ToLower(sortBy)]
	if !ok {
		return "created_at DESC"
	}

	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

// jsonStringPattern returns the JSON encoding of s without the
// surrounding quotes escaped away, so it can be embedded in a LIKE
// pattern against a stored JSON array.
func jsonStringPattern(s string) string {
	encoded, _ := json.Marshal(s)
	return string(encoded)
}

func (r *InterventionRepositoryImpl) GetStats(ctx context.Context) (*intervention.Stats, error) {
	stats := &intervention.Stats{}

	if err := r.db.WithContext(ctx).Model(&models.InterventionModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count interventions: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.InterventionModel{}).
		Where("is_archived = ?", true).Count(&stats.Archived).Error; err != nil {
		return nil, fmt.Errorf("failed to count archived interventions: %w", err)
	}
	stats.Active = stats.Total - stats.Archived

	if err := r.db.WithContext(ctx).Model(&models.InterventionModel{}).
		Select("centrale, COUNT(*) as count").
		Group("centrale").
		Order("count DESC, centrale ASC").
		Scan(&stats.ByCentrale).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate interventions per centrale: %w", err)
	}

	byType, err := r.countEventTypes(ctx)
	if err != nil {
		return nil, err
	}
	stats.ByTypeEvenement = byType

	return stats, nil
}

// countEventTypes aggregates in memory because event types live in a
// JSON array column that SQL GROUP BY cannot split portably.
func (r *InterventionRepositoryImpl) countEventTypes(ctx context.Context) ([]intervention.EventTypeCount, error) {
	var raws []string
	if err := r.db.WithContext(ctx).
		Model(&models.InterventionModel{}).
		Where("type_evenement IS NOT NULL AND type_evenement != ''").
		Pluck("type_evenement", &raws).Error; err != nil {
		return nil, fmt.Errorf("failed to load event types: %w", err)
	}

	counts := make(map[string]int64)
	for _, raw := range raws {
		var types []string
		if err := json.Unmarshal([]byte(raw), &types); err != nil {
			// Legacy rows may hold a bare value instead of an array.
			types = []string{raw}
		}
		for _, t := range types {
			if t != "" {
				counts[t]++
			}
		}
	}

	result := make([]intervention.EventTypeCount, 0, len(counts))
	for t, c := range counts {
		result = append(result, intervention.EventTypeCount{Type: t, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Type < result[j].Type
	})

	return result, nil
}
