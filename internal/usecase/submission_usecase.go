package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/inspection"
	"roadinspect/internal/domain/timeline"
	"roadinspect/internal/domain/workflow"
	"roadinspect/internal/usecase/interfaces"
)

var (
	ErrRangeInvalid            = errors.New("invalid inspection range")
	ErrLayerMissing            = errors.New("no layers selected")
	ErrCheckMissing            = errors.New("no checks selected")
	ErrTypeMissing             = errors.New("no inspection types selected")
	ErrAppointmentMissing      = errors.New("appointment date missing")
	ErrSubmissionNumberInvalid = errors.New("submission number must be numeric")
	ErrSubmitRejected          = errors.New("inspection submission rejected")
)

// ISubmissionUseCase turns a selection into side-correct atomic inspection
// entries and hands them to the write collaborator in one logical write.
// All validation happens before the write attempt; a collaborator failure is
// reported once, retry is the caller re-submitting.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, cmd SubmissionCommand) (SubmissionResult, error)
}

type SubmissionCommand struct {
	RoadSectionID    string
	PhaseID          string
	Side             entities.Side
	StartPK          float64
	EndPK            float64
	Layers           []string
	Checks           []string
	Types            []string
	Remark           string
	AppointmentDate  *time.Time
	SubmissionNumber string
}

type SubmissionResult struct {
	SubmissionID string
	Batches      []inspection.Batch
	EntryCount   int
}

type SubmissionUseCase struct {
	registry  *workflow.Registry
	phaseRepo interfaces.IPhaseRepository
	inspRepo  interfaces.IInspectionReadRepository
	writer    interfaces.IInspectionWriteRepository
	log       zerolog.Logger
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(
	registry *workflow.Registry,
	phaseRepo interfaces.IPhaseRepository,
	inspRepo interfaces.IInspectionReadRepository,
	writer interfaces.IInspectionWriteRepository,
	log zerolog.Logger,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		registry:  registry,
		phaseRepo: phaseRepo,
		inspRepo:  inspRepo,
		writer:    writer,
		log:       log,
	}
}

func (u *SubmissionUseCase) Submit(ctx context.Context, cmd SubmissionCommand) (SubmissionResult, error) {
	if err := validateSubmission(cmd); err != nil {
		return SubmissionResult{}, err
	}

	view, err := loadPhaseView(ctx, u.registry, u.phaseRepo, u.inspRepo, cmd.RoadSectionID, cmd.PhaseID)
	if err != nil {
		return SubmissionResult{}, err
	}

	types := filterTypes(workflow.OfferedTypes(view.template, cmd.Checks), cmd.Types)
	if len(types) == 0 {
		return SubmissionResult{}, ErrTypeMissing
	}

	lo, hi := timeline.NormalizeRange(cmd.StartPK, cmd.EndPK)
	side := cmd.Side
	if view.pointHasSides && side == "" {
		side = entities.SideBoth
	}

	batches := inspection.BuildBatches(view.template, side, lo, hi, cmd.Layers, cmd.Checks, view.phaseSnapshots)

	meta := inspection.EntryMeta{
		RoadSectionID:    view.road.ID,
		PhaseID:          view.phase.ID,
		StartPK:          lo,
		EndPK:            hi,
		Types:            types,
		Remark:           cmd.Remark,
		AppointmentDate:  *cmd.AppointmentDate,
		SubmissionNumber: strings.TrimSpace(cmd.SubmissionNumber),
	}

	var entries []entities.InspectionEntry
	for _, b := range batches {
		entries = append(entries, inspection.ExpandEntries(b, meta)...)
	}

	submissionID := uuid.NewString()
	u.log.Info().
		Str("submission_id", submissionID).
		Str("phase_id", view.phase.ID).
		Str("side", string(side)).
		Int("batches", len(batches)).
		Int("entries", len(entries)).
		Msg("submitting inspection batch")

	if err := u.writer.CreateEntries(ctx, entries); err != nil {
		u.log.Error().
			Str("submission_id", submissionID).
			Err(err).
			Msg("inspection batch rejected")

		var rejected *interfaces.WriteRejectedError
		if errors.As(err, &rejected) && len(rejected.Details) > 0 {
			return SubmissionResult{}, fmt.Errorf("%w: %s", ErrSubmitRejected, strings.Join(rejected.Details, "; "))
		}
		return SubmissionResult{}, fmt.Errorf("%w: %v", ErrSubmitRejected, err)
	}

	return SubmissionResult{
		SubmissionID: submissionID,
		Batches:      batches,
		EntryCount:   len(entries),
	}, nil
}

func validateSubmission(cmd SubmissionCommand) error {
	if !finite(cmd.StartPK) || !finite(cmd.EndPK) {
		return ErrRangeInvalid
	}
	if len(cmd.Layers) == 0 {
		return ErrLayerMissing
	}
	if len(cmd.Checks) == 0 {
		return ErrCheckMissing
	}
	if cmd.AppointmentDate == nil || cmd.AppointmentDate.IsZero() {
		return ErrAppointmentMissing
	}
	if n := strings.TrimSpace(cmd.SubmissionNumber); n != "" {
		if _, err := strconv.ParseInt(n, 10, 64); err != nil {
			return ErrSubmissionNumberInvalid
		}
	}
	return nil
}

func filterTypes(allowed, requested []string) []string {
	allowedSet := make(map[string]bool, len(allowed))
	for _, t := range allowed {
		allowedSet[entities.NormalizeName(t)] = true
	}
	var out []string
	for _, t := range requested {
		if allowedSet[entities.NormalizeName(t)] {
			out = append(out, t)
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
