// Package importer turns bulk candidate input (pasted rows or a CSV file)
// into created candidate records, one create call per row.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/talentflow-hq/talentflow/internal/dtos"
	"github.com/talentflow-hq/talentflow/internal/models"
)

// CandidateCreator is the slice of the transport client the importer needs.
type CandidateCreator interface {
	Create(ctx context.Context, req dtos.CandidateCreationRequest) (*models.Candidate, error)
}

type Importer struct {
	candidates CandidateCreator
	logger     *zap.Logger
	validate   *validator.Validate
}

func New(candidates CandidateCreator, logger *zap.Logger) *Importer {
	v := validator.New()
	// DTO constraints live in binding tags (gin reads the same ones).
	v.SetTagName("binding")
	return &Importer{candidates: candidates, logger: logger, validate: v}
}

// ParseManual parses manually entered candidate data, one candidate per
// line, fields comma-separated in the order Name, Email, Phone, Position,
// Location. Missing fields fall back to placeholders; every imported
// candidate starts in the applied stage with today's date.
func ParseManual(input string) []dtos.CandidateCreationRequest {
	var rows []dtos.CandidateCreationRequest
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		rows = append(rows, rowFromFields(parts, len(rows)))
	}
	return rows
}

// ParseCSV parses the candidate template format: a header row followed by
// Name, Email, Phone, Position, Location records.
func ParseCSV(r io.Reader) ([]dtos.CandidateCreationRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Drop the header row when present.
	if strings.EqualFold(strings.TrimSpace(records[0][0]), "name") {
		records = records[1:]
	}

	var rows []dtos.CandidateCreationRequest
	for _, record := range records {
		fields := make([]string, len(record))
		for i := range record {
			fields[i] = strings.TrimSpace(record[i])
		}
		if len(fields) == 0 || fields[0] == "" {
			continue
		}
		rows = append(rows, rowFromFields(fields, len(rows)))
	}
	return rows, nil
}

func rowFromFields(fields []string, index int) dtos.CandidateCreationRequest {
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	row := dtos.CandidateCreationRequest{
		Name:        field(0),
		Email:       field(1),
		Phone:       field(2),
		Position:    field(3),
		Location:    field(4),
		Stage:       models.StageApplied,
		AppliedDate: models.Today(),
	}
	if row.Name == "" {
		row.Name = fmt.Sprintf("Candidate %d", index+1)
	}
	if row.Email == "" {
		row.Email = fmt.Sprintf("candidate%d@example.com", index+1)
	}
	if row.Phone == "" {
		row.Phone = fmt.Sprintf("+1 (555) %03d-%04d", rand.Intn(900)+100, rand.Intn(9000)+1000)
	}
	if row.Position == "" {
		row.Position = "Not specified"
	}
	if row.Location == "" {
		row.Location = "Not specified"
	}
	return row
}

// Import validates each row and creates the candidates one by one. The
// first failure aborts the import; candidates created before it stay
// created.
func (i *Importer) Import(ctx context.Context, rows []dtos.CandidateCreationRequest) ([]models.Candidate, error) {
	var created []models.Candidate
	for idx, row := range rows {
		if err := i.validate.Struct(row); err != nil {
			return created, fmt.Errorf("row %d is invalid: %w", idx+1, err)
		}
		candidate, err := i.candidates.Create(ctx, row)
		if err != nil {
			i.logger.Warn("candidate import aborted",
				zap.Int("row", idx+1),
				zap.Int("created", len(created)),
				zap.Error(err))
			return created, err
		}
		created = append(created, *candidate)
	}
	i.logger.Info("candidates imported", zap.Int("count", len(created)))
	return created, nil
}
