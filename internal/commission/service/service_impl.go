package service

import (
	"context"
	"sort"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/komisi/internal/clock"
	"github.com/smallbiznis/komisi/internal/commission/domain"
	companydomain "github.com/smallbiznis/komisi/internal/company/domain"
	"github.com/smallbiznis/komisi/internal/config"
	documentdomain "github.com/smallbiznis/komisi/internal/document/domain"
	referencedomain "github.com/smallbiznis/komisi/internal/reference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// createBatchSize bounds the size of a single bulk insert so one invocation
// stays inside the scheduler's timeout even on a large backlog.
const createBatchSize = 100

var hundred = decimal.NewFromInt(100)

type Params struct {
	fx.In

	DB             *gorm.DB
	Log            *zap.Logger
	GenID          *snowflake.Node
	Clock          clock.Clock
	Config         config.Config
	DocumentRepo   documentdomain.Repository
	CompanyRepo    companydomain.Repository
	ReferenceRepo  referencedomain.Repository
	CommissionRepo domain.Repository
}

type service struct {
	db             *gorm.DB
	log            *zap.Logger
	genID          *snowflake.Node
	clock          clock.Clock
	cfg            config.SyncConfig
	documentRepo   documentdomain.Repository
	companyRepo    companydomain.Repository
	referenceRepo  referencedomain.Repository
	commissionRepo domain.Repository
}

func New(p Params) (domain.Service, error) {
	if p.DB == nil || p.Log == nil || p.GenID == nil || p.Clock == nil ||
		p.DocumentRepo == nil || p.CompanyRepo == nil || p.ReferenceRepo == nil || p.CommissionRepo == nil {
		return nil, domain.ErrInvalidConfig
	}
	return &service{
		db:             p.DB,
		log:            p.Log.Named("commission.sync"),
		genID:          p.GenID,
		clock:          p.Clock,
		cfg:            p.Config.Sync,
		documentRepo:   p.DocumentRepo,
		companyRepo:    p.CompanyRepo,
		referenceRepo:  p.ReferenceRepo,
		commissionRepo: p.CommissionRepo,
	}, nil
}

// candidate is a freshly computed commission record plus the rounding
// metadata its quantity comparison needs.
type candidate struct {
	record      domain.CommissionRecord
	uomRounding *decimal.Decimal
}

type recordUpdate struct {
	id     snowflake.ID
	fields map[string]any
}

type syncPlan struct {
	updates   []recordUpdate
	deletions []snowflake.ID
	creations []domain.CommissionRecord
	unchanged int
}

func (s *service) Sync(ctx context.Context) (domain.SyncReport, error) {
	var report domain.SyncReport

	candidates, err := s.scan(ctx)
	if err != nil {
		return report, domain.NewSyncError(domain.SyncPhaseScan, err)
	}
	report.Scanned = len(candidates)

	plan, err := s.diff(ctx, candidates)
	if err != nil {
		return report, domain.NewSyncError(domain.SyncPhaseDiff, err)
	}
	report.Unchanged = plan.unchanged

	if err := s.apply(ctx, plan, &report); err != nil {
		return report, domain.NewSyncError(domain.SyncPhaseApply, err)
	}

	return report, nil
}

func (s *service) Run(ctx context.Context) bool {
	report, err := s.Sync(ctx)
	if err != nil {
		s.log.Error("commission sync failed", zap.Error(err))
		return false
	}

	s.log.Info("commission sync completed",
		zap.Int("scanned", report.Scanned),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("deleted", report.Deleted),
		zap.Int("unchanged", report.Unchanged),
	)
	return true
}

func (s *service) List(ctx context.Context, req domain.ListRequest) ([]domain.CommissionRecord, error) {
	return s.commissionRepo.List(ctx, s.db, req)
}

// scan queries every eligible line and computes its commission attributes,
// keyed by source line id. Read-only.
func (s *service) scan(ctx context.Context) (map[snowflake.ID]candidate, error) {
	lines, err := s.documentRepo.ListEligibleLines(ctx, s.db)
	if err != nil {
		return nil, err
	}

	candidates := make(map[snowflake.ID]candidate, len(lines))
	for _, line := range lines {
		rule, ok := documentRules[line.DocumentType]
		if !ok {
			continue
		}

		amount := line.Subtotal.Mul(line.CommissionRate).Div(hundred)
		if rule.negate {
			amount = amount.Neg()
		}

		salesperson := line.SalespersonID
		if salesperson == nil && s.cfg.DefaultSalespersonID != 0 {
			fallback := snowflake.ID(s.cfg.DefaultSalespersonID)
			salesperson = &fallback
		}

		candidates[line.LineID] = candidate{
			record: domain.CommissionRecord{
				SourceLineID:     line.LineID,
				DocumentID:       line.DocumentID,
				ProductID:        line.ProductID,
				SalespersonID:    salesperson,
				CompanyID:        line.CompanyID,
				Quantity:         line.Quantity,
				CommissionRate:   line.CommissionRate,
				CommissionAmount: amount,
				LineSubtotal:     line.Subtotal,
			},
			uomRounding: line.UomRounding,
		}
	}

	return candidates, nil
}

// diff partitions the candidate map against the materialized records into
// update, delete and create sets. Matched candidates are consumed from the
// map; whatever remains becomes a creation.
func (s *service) diff(ctx context.Context, candidates map[snowflake.ID]candidate) (syncPlan, error) {
	var plan syncPlan

	existing, err := s.commissionRepo.FindAll(ctx, s.db)
	if err != nil {
		return plan, err
	}

	companyCurrencies, err := s.companyCurrencies(ctx)
	if err != nil {
		return plan, err
	}

	for _, record := range existing {
		cand, ok := candidates[record.SourceLineID]
		if !ok {
			obsolete, err := s.shouldDelete(ctx, record.SourceLineID)
			if err != nil {
				return plan, err
			}
			if obsolete {
				plan.deletions = append(plan.deletions, record.ID)
			}
			continue
		}
		delete(candidates, record.SourceLineID)

		env := compareEnv{
			qtyEqual:    qtyEqualFor(cand.uomRounding),
			amountEqual: amountEqualFor(companyCurrencies, record.CompanyID),
		}
		fields := diffFields(record, cand.record, env)
		if len(fields) == 0 {
			plan.unchanged++
			continue
		}
		fields["updated_at"] = s.clock.Now()
		plan.updates = append(plan.updates, recordUpdate{id: record.ID, fields: fields})
	}

	for _, cand := range candidates {
		plan.creations = append(plan.creations, cand.record)
	}
	sort.Slice(plan.creations, func(i, j int) bool {
		return plan.creations[i].SourceLineID < plan.creations[j].SourceLineID
	})

	return plan, nil
}

// shouldDelete re-validates a line whose commission record had no match in
// the scan. The scan result is not trusted as deletion truth: the line is
// checked directly, so a document that changed state mid-scan is handled and
// a line that merely lost its rate keeps its record for now.
func (s *service) shouldDelete(ctx context.Context, lineID snowflake.ID) (bool, error) {
	exists, err := s.documentRepo.LineExists(ctx, s.db, int64(lineID))
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}

	doc, err := s.documentRepo.FindLineDocument(ctx, s.db, int64(lineID))
	if err != nil {
		return false, err
	}
	if doc == nil {
		return true, nil
	}

	if doc.State != documentdomain.DocumentStatePosted {
		return true, nil
	}
	rule, ok := documentRules[doc.DocumentType]
	if !ok {
		return true, nil
	}
	if rule.requiresPaid && doc.PaymentState != documentdomain.PaymentStatePaid {
		return true, nil
	}
	return false, nil
}

// apply executes updates, then deletions, then batched creations. There is
// no rollback across steps: completed writes stay committed and the next run
// converges whatever is left.
func (s *service) apply(ctx context.Context, plan syncPlan, report *domain.SyncReport) error {
	for _, update := range plan.updates {
		if err := s.commissionRepo.UpdateFields(ctx, s.db, update.id, update.fields); err != nil {
			return err
		}
		report.Updated++
	}

	if err := s.commissionRepo.DeleteByIDs(ctx, s.db, plan.deletions); err != nil {
		return err
	}
	report.Deleted = len(plan.deletions)

	if len(plan.creations) == 0 {
		return nil
	}

	now := s.clock.Now()
	records := make([]domain.CommissionRecord, len(plan.creations))
	for i, record := range plan.creations {
		record.ID = s.genID.Generate()
		record.CreatedAt = now
		record.UpdatedAt = now
		records[i] = record
	}
	if err := s.commissionRepo.CreateBatch(ctx, s.db, records, createBatchSize); err != nil {
		return err
	}
	report.Created = len(records)

	return nil
}

// companyCurrencies resolves each company to its currency so monetary fields
// compare at the right precision.
func (s *service) companyCurrencies(ctx context.Context) (map[snowflake.ID]referencedomain.Currency, error) {
	companies, err := s.companyRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	currencies, err := s.referenceRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]referencedomain.Currency, len(currencies))
	for _, currency := range currencies {
		byCode[currency.Code] = currency
	}

	resolved := make(map[snowflake.ID]referencedomain.Currency, len(companies))
	for _, company := range companies {
		if currency, ok := byCode[company.CurrencyCode]; ok {
			resolved[company.ID] = currency
		}
	}
	return resolved, nil
}
