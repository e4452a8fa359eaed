package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/csa-rae/gantt-api/internal/dates"
	"github.com/csa-rae/gantt-api/internal/domain"
	"github.com/csa-rae/gantt-api/internal/repository"
	"go.uber.org/zap"
)

const (
	// defaultPaymentStatus is substituted for blank invoice payment statuses
	defaultPaymentStatus = "not paid"
	// defaultReadyStatus is substituted for blank ready-to-invoice statuses
	defaultReadyStatus = "ready to be invoiced"
	// invoicedStatus marks a ready-to-invoice row as already processed;
	// such rows belong in the invoiced table and are excluded here
	invoicedStatus = "invoiced"
)

// GanttService assembles the nested chart structure from the five read
// tables. Each call is a fresh, request-scoped aggregation: the output is a
// pure function of the rows read, nothing is cached between calls.
type GanttService struct {
	projectRepo       *repository.ProjectRepository
	subprojectRepo    *repository.SubprojectRepository
	invoiceRepo       *repository.InvoiceRepository
	readyInvoiceRepo  *repository.ReadyInvoiceRepository
	unpaidInvoiceRepo *repository.UnpaidInvoiceRepository
	logger            *zap.Logger
}

func NewGanttService(
	projectRepo *repository.ProjectRepository,
	subprojectRepo *repository.SubprojectRepository,
	invoiceRepo *repository.InvoiceRepository,
	readyInvoiceRepo *repository.ReadyInvoiceRepository,
	unpaidInvoiceRepo *repository.UnpaidInvoiceRepository,
	logger *zap.Logger,
) *GanttService {
	return &GanttService{
		projectRepo:       projectRepo,
		subprojectRepo:    subprojectRepo,
		invoiceRepo:       invoiceRepo,
		readyInvoiceRepo:  readyInvoiceRepo,
		unpaidInvoiceRepo: unpaidInvoiceRepo,
		logger:            logger,
	}
}

// BuildChart runs the five reads and aggregates them into the ordered
// project list. Any read failure aborts the whole run; no partial result
// is ever returned. Child rows whose parent project is unknown, and
// subprojects missing either date, are dropped silently (stale data, not
// a defect).
func (s *GanttService) BuildChart(ctx context.Context) ([]domain.ProjectNode, error) {
	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	subprojects, err := s.subprojectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read subprojects: %w", err)
	}
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read invoices: %w", err)
	}
	readyInvoices, err := s.readyInvoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ready-to-invoice records: %w", err)
	}
	unpaidInvoices, err := s.unpaidInvoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read unpaid invoices: %w", err)
	}

	// Build the parent project index. Duplicate project ids keep the last
	// row's fields but the first row's output position (documented policy).
	index := make(map[int64]*domain.ProjectNode, len(projects))
	order := make([]int64, 0, len(projects))
	for _, p := range projects {
		if _, dup := index[p.ProjectID]; dup {
			s.logger.Warn("duplicate project id in source, keeping last row",
				zap.Int64("project_id", p.ProjectID))
		} else {
			order = append(order, p.ProjectID)
		}
		index[p.ProjectID] = &domain.ProjectNode{
			ID:             fmt.Sprintf("P%d", p.ProjectID),
			Name:           p.ProjectName,
			Start:          dates.ToISO(p.StartDate),
			End:            dates.ToISO(p.EndDate),
			Urgency:        normalizeUrgency(p.Urgency),
			State:          p.State,
			ProjectManager: p.ProjectManager,
			ProjectDetails: p.ProjectDetails,
			PTeam:          p.PTeam,
			AssignTo:       p.AssignTo,
			ReopenStatus:   p.ReopenStatus,
			Children:       []domain.ChildNode{},
		}
	}

	s.attachSubprojects(index, subprojects)
	s.attachInvoices(index, invoices)
	s.attachReadyInvoices(index, readyInvoices)
	s.attachUnpaidInvoices(index, unpaidInvoices)

	out := make([]domain.ProjectNode, 0, len(order))
	for _, id := range order {
		node := index[id]
		sortChildren(node.Children)
		out = append(out, *node)
	}
	sortProjects(out)

	return out, nil
}

// attachSubprojects appends renderable subprojects to their parents.
// A subproject needs both dates to render as a time-span bar; rows missing
// either are dropped. Child ids are surrogate keys from the parent id and
// the per-parent append position, so duplicate status codes cannot collide.
func (s *GanttService) attachSubprojects(index map[int64]*domain.ProjectNode, rows []domain.SubprojectRow) {
	for _, sp := range rows {
		parent, ok := index[sp.ProjectID]
		if !ok {
			continue
		}
		start := dates.ToISO(sp.StartDate)
		end := dates.ToISO(sp.SubEndDate)
		if start == nil || end == nil {
			continue
		}
		parent.Children = append(parent.Children, domain.ChildNode{
			ID:                fmt.Sprintf("SP%d_%d", sp.ProjectID, len(parent.Children)+1),
			Name:              sp.SubprojectName,
			Start:             *start,
			End:               *end,
			Urgency:           normalizeUrgency(sp.Urgency),
			Status:            sp.SubprojectStatus,
			SubprojectDetails: sp.SubprojectDetails,
			PTeam:             sp.PTeam,
			AssignTo:          sp.AssignTo,
			ReopenStatus:      sp.ReopenStatus,
		})
	}
}

func (s *GanttService) attachInvoices(index map[int64]*domain.ProjectNode, rows []domain.InvoiceRow) {
	for _, inv := range rows {
		parent, ok := index[inv.ProjectID]
		if !ok {
			continue
		}
		parent.Invoices = append(parent.Invoices, domain.InvoiceEntry{
			InvoiceNumber: inv.InvoiceNumber,
			ServiceDate:   dates.ToISODate(inv.ServiceDate),
			DueDate:       dates.ToISODate(inv.DueDate),
			PaymentStatus: defaultIfBlank(inv.PaymentStatus, defaultPaymentStatus),
			Amount:        inv.Amount,
			Comment:       inv.Comment,
		})
	}
}

// attachReadyInvoices applies the status default before the exclusion
// filter: a row whose status reads "invoiced" in any casing is already
// processed and is dropped whether the status was explicit or defaulted.
func (s *GanttService) attachReadyInvoices(index map[int64]*domain.ProjectNode, rows []domain.ReadyInvoiceRow) {
	for _, ri := range rows {
		parent, ok := index[ri.ProjectID]
		if !ok {
			continue
		}
		status := defaultIfBlank(ri.ProjectStatus, defaultReadyStatus)
		if strings.EqualFold(strings.TrimSpace(status), invoicedStatus) {
			continue
		}
		parent.ReadyToInvoice = append(parent.ReadyToInvoice, domain.ReadyInvoiceEntry{
			InvoiceNumber: ri.InvoiceNumber,
			ServiceDate:   dates.ToISODate(ri.ServiceDate),
			DueDate:       dates.ToISODate(ri.DueDate),
			ProjectStatus: status,
			Price:         ri.Price,
			Comments:      ri.Comments,
		})
	}
}

func (s *GanttService) attachUnpaidInvoices(index map[int64]*domain.ProjectNode, rows []domain.UnpaidInvoiceRow) {
	for _, up := range rows {
		parent, ok := index[up.ProjectID]
		if !ok {
			continue
		}
		parent.UnpaidInvoices = append(parent.UnpaidInvoices, domain.UnpaidInvoiceEntry{
			InvoiceNo:    up.InvoiceNo,
			Comments:     up.Comments,
			InvoiceDate:  dates.ToISODate(up.InvoiceDate),
			BookedDate:   dates.ToISODate(up.BookedDate),
			ReceivedDate: dates.ToISODate(up.ReceivedDate),
			Amount:       up.Amount,
		})
	}
}

// normalizeUrgency trims and lowercases an urgency value; absent becomes ""
func normalizeUrgency(v *string) string {
	if v == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*v))
}

// defaultIfBlank substitutes def when the value is absent or whitespace-only
func defaultIfBlank(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return *v
}

// childSortKey parses a status code as a non-negative integer. Anything
// that is not purely decimal digits sorts as 0.
func childSortKey(status *string) int {
	if status == nil || *status == "" {
		return 0
	}
	for _, r := range *status {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(*status)
	if err != nil {
		return 0
	}
	return n
}

// sortChildren orders children ascending by numeric status code. The sort
// is stable, so rows with equal keys keep their source order.
func sortChildren(children []domain.ChildNode) {
	sort.SliceStable(children, func(i, j int) bool {
		return childSortKey(children[i].Status) < childSortKey(children[j].Status)
	})
}

// sortProjects orders projects ascending by start date; projects without a
// start sort after every dated one. Stable, so ties keep source order.
func sortProjects(projects []domain.ProjectNode) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i].Start, projects[j].Start
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
