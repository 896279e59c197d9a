package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"sitelog/internal/domain/intervention"
	"sitelog/internal/domain/user"
	"sitelog/internal/shared/logger"
)

// exportLimit bounds a CSV export to one repository page.
const exportLimit = 100000

var csvHeader = []string{
	"ID",
	"Titre",
	"Centrale Type",
	"Centrale",
	"Equipement",
	"Entreprise Intervenante",
	"Nombre Intervenant",
	"Intervenant Enregistré",
	"Date Ref",
	"Debut Inter",
	"Fin Inter",
	"Durée (heures)",
	"Date Indisponibilité Début",
	"Date Indisponibilité Fin",
	"Indispo Terminée",
	"Durée Indisponibilité (heures)",
	"Type Événement",
	"Type Dysfonctionnement",
	"Perte Production",
	"Perte Communication",
	"Rapport Attendu",
	"Rapport Reçu",
	"Commentaires",
	"Archivé",
	"Créé le",
	"Créé par",
}

type ExportInterventionsQuery struct {
	Filter intervention.Filter
}

type ExportInterventionsUseCase struct {
	interventionRepo intervention.Repository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewExportInterventionsUseCase(
	interventionRepo intervention.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ExportInterventionsUseCase {
	return &ExportInterventionsUseCase{
		interventionRepo: interventionRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Execute renders the filtered interventions as a UTF-8 CSV document.
// The payload starts with a byte order mark so spreadsheet tools detect
// the encoding.
func (uc *ExportInterventionsUseCase) Execute(ctx context.Context, query ExportInterventionsQuery) ([]byte, error) {
	filter := query.Filter
	filter.Page = 1
	filter.Limit = exportLimit

	items, _, err := uc.interventionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list interventions for export", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	creatorNames := map[string]string{}
	for _, i := range items {
		if err := w.Write(uc.csvRow(ctx, i, creatorNames)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	uc.logger.Infow("interventions exported", "count", len(items))

	return buf.Bytes(), nil
}

func (uc *ExportInterventionsUseCase) csvRow(ctx context.Context, i *intervention.Intervention, creatorNames map[string]string) []string {
	return []string{
		i.ID(),
		i.Titre(),
		i.CentraleType(),
		i.Centrale(),
		i.Equipement(),
		i.EntrepriseIntervenante(),
		csvInt(i.NombreIntervenant()),
		i.IntervenantEnregistre(),
		csvTime(i.DateRef()),
		csvTime(i.DebutInter()),
		csvTime(i.FinInter()),
		csvHours(i.DureeHeures()),
		csvTime(i.DateIndisponibiliteDebut()),
		csvTime(i.DateIndisponibiliteFin()),
		csvBool(i.IndispoTerminee()),
		csvHours(i.DureeIndisponibiliteHeures()),
		strings.Join(i.TypeEvenement(), ", "),
		strings.Join(i.TypeDysfonctionnement(), ", "),
		csvBool(i.HasPerteProduction()),
		csvBool(i.HasPerteCommunication()),
		csvBool(i.RapportAttendu()),
		csvBool(i.RapportRecu()),
		i.Commentaires(),
		csvBool(i.IsArchived()),
		i.CreatedAt().Format(time.RFC3339),
		uc.creatorName(ctx, i.CreatedByID(), creatorNames),
	}
}

func (uc *ExportInterventionsUseCase) creatorName(ctx context.Context, userID string, cache map[string]string) string {
	if userID == "" {
		return ""
	}
	if name, ok := cache[userID]; ok {
		return name
	}

	name := ""
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		uc.logger.Warnw("failed to resolve creator name", "error", err, "user_id", userID)
	} else if u != nil {
		name = u.FullName()
	}
	cache[userID] = name
	return name
}

func csvBool(b bool) string {
	if b {
		return "Oui"
	}
	return "Non"
}

func csvInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func csvHours(h *float64) string {
	if h == nil {
		return ""
	}
	return strconv.FormatFloat(*h, 'f', -1, 64)
}

func csvTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
