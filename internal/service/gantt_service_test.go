package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/csa-rae/gantt-api/internal/domain"
	"github.com/csa-rae/gantt-api/internal/repository"
	"github.com/csa-rae/gantt-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&domain.ProjectRow{},
		&domain.SubprojectRow{},
		&domain.InvoiceRow{},
		&domain.ReadyInvoiceRow{},
		&domain.UnpaidInvoiceRow{},
	)
	require.NoError(t, err)

	return db
}

func setupService(db *gorm.DB) *service.GanttService {
	return service.NewGanttService(
		repository.NewProjectRepository(db),
		repository.NewSubprojectRepository(db),
		repository.NewInvoiceRepository(db),
		repository.NewReadyInvoiceRepository(db),
		repository.NewUnpaidInvoiceRepository(db),
		zap.NewNop(),
	)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func createProject(t *testing.T, db *gorm.DB, id int64, name string, start, end *string) {
	require.NoError(t, db.Create(&domain.ProjectRow{
		ProjectID:   id,
		ProjectName: name,
		StartDate:   start,
		EndDate:     end,
	}).Error)
}

func createSubproject(t *testing.T, db *gorm.DB, projectID int64, name string, status *string, start, end *string) {
	require.NoError(t, db.Create(&domain.SubprojectRow{
		ProjectID:        projectID,
		SubprojectName:   name,
		SubprojectStatus: status,
		StartDate:        start,
		SubEndDate:       end,
	}).Error)
}

func TestBuildChart_EndToEnd(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 7, "Warehouse Upgrade", strPtr("2024-01-01"), strPtr("2024-06-01"))
	createSubproject(t, db, 7, "Foundation", strPtr("2"), strPtr("2024-01-10"), strPtr("2024-02-01"))
	require.NoError(t, db.Create(&domain.InvoiceRow{
		ProjectID:     7,
		InvoiceNumber: strPtr("INV-100"),
		ServiceDate:   strPtr("2024-02-05"),
		DueDate:       strPtr("2024-03-05"),
		PaymentStatus: strPtr(""),
		Amount:        floatPtr(1500),
	}).Error)

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	p := out[0]
	assert.Equal(t, "P7", p.ID)
	assert.Equal(t, "Warehouse Upgrade", p.Name)
	require.NotNil(t, p.Start)
	assert.Equal(t, "2024-01-01T00:00:00", *p.Start)

	require.Len(t, p.Children, 1)
	child := p.Children[0]
	assert.Equal(t, "SP7_1", child.ID)
	assert.Equal(t, "Foundation", child.Name)
	assert.Equal(t, "2024-01-10T00:00:00", child.Start)
	assert.Equal(t, "2024-02-01T00:00:00", child.End)
	require.NotNil(t, child.Status)
	assert.Equal(t, "2", *child.Status)

	require.Len(t, p.Invoices, 1)
	assert.Equal(t, "not paid", p.Invoices[0].PaymentStatus)
	require.NotNil(t, p.Invoices[0].ServiceDate)
	assert.Equal(t, "2024-02-05", *p.Invoices[0].ServiceDate)
}

func TestBuildChart_ChildSortOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 1, "Sorting", strPtr("2024-01-01"), strPtr("2024-12-31"))
	for _, status := range []string{"3", "", "1", "abc", "2"} {
		createSubproject(t, db, 1, "sub-"+status, strPtr(status),
			strPtr("2024-01-01"), strPtr("2024-02-01"))
	}

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Children, 5)

	var got []string
	for _, c := range out[0].Children {
		got = append(got, *c.Status)
	}
	// Non-numeric statuses sort first as key 0 in source order, numeric
	// ascending after them.
	assert.Equal(t, []string{"", "abc", "1", "2", "3"}, got)
}

func TestBuildChart_ProjectOrderByStartDate(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 1, "undated", nil, nil)
	createProject(t, db, 2, "later", strPtr("2024-03-01"), nil)
	createProject(t, db, 3, "earlier", strPtr("2023-01-15"), nil)

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "earlier", out[0].Name)
	assert.Equal(t, "later", out[1].Name)
	assert.Equal(t, "undated", out[2].Name)
	assert.Nil(t, out[2].Start)
}

func TestBuildChart_DropsChildrenMissingDates(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 1, "Parent", strPtr("2024-01-01"), nil)
	createSubproject(t, db, 1, "kept", strPtr("1"), strPtr("2024-01-01"), strPtr("2024-02-01"))
	createSubproject(t, db, 1, "zero start", strPtr("2"), strPtr("0000-00-00"), strPtr("2024-02-01"))
	createSubproject(t, db, 1, "missing end", strPtr("3"), strPtr("2024-01-01"), nil)
	createSubproject(t, db, 1, "junk start", strPtr("4"), strPtr("soon"), strPtr("2024-02-01"))

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1, "project must survive its unrenderable children")
	require.Len(t, out[0].Children, 1)
	assert.Equal(t, "kept", out[0].Children[0].Name)
}

func TestBuildChart_DropsOrphanRows(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 1, "Known", strPtr("2024-01-01"), nil)
	createSubproject(t, db, 999, "orphan child", strPtr("1"), strPtr("2024-01-01"), strPtr("2024-02-01"))
	require.NoError(t, db.Create(&domain.InvoiceRow{ProjectID: 999, InvoiceNumber: strPtr("X")}).Error)
	require.NoError(t, db.Create(&domain.ReadyInvoiceRow{ProjectID: 999}).Error)
	require.NoError(t, db.Create(&domain.UnpaidInvoiceRow{ProjectID: 999}).Error)

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Children)
	assert.Empty(t, out[0].Invoices)
	assert.Empty(t, out[0].ReadyToInvoice)
	assert.Empty(t, out[0].UnpaidInvoices)
}

func TestBuildChart_ReadyInvoiceFiltering(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 1, "Billing", strPtr("2024-01-01"), nil)
	require.NoError(t, db.Create(&domain.ReadyInvoiceRow{
		ProjectID: 1, InvoiceNumber: strPtr("R1"), ProjectStatus: strPtr("Invoiced"),
	}).Error)
	require.NoError(t, db.Create(&domain.ReadyInvoiceRow{
		ProjectID: 1, InvoiceNumber: strPtr("R2"), ProjectStatus: strPtr("INVOICED"),
	}).Error)
	require.NoError(t, db.Create(&domain.ReadyInvoiceRow{
		ProjectID: 1, InvoiceNumber: strPtr("R3"), ProjectStatus: strPtr("  "),
	}).Error)
	require.NoError(t, db.Create(&domain.ReadyInvoiceRow{
		ProjectID: 1, InvoiceNumber: strPtr("R4"), ProjectStatus: strPtr("pending review"),
	}).Error)

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].ReadyToInvoice, 2, "invoiced rows excluded regardless of casing")

	assert.Equal(t, "R3", *out[0].ReadyToInvoice[0].InvoiceNumber)
	assert.Equal(t, "ready to be invoiced", out[0].ReadyToInvoice[0].ProjectStatus)
	assert.Equal(t, "R4", *out[0].ReadyToInvoice[1].InvoiceNumber)
	assert.Equal(t, "pending review", out[0].ReadyToInvoice[1].ProjectStatus)
}

func TestBuildChart_UnpaidCollectionOnlyWhenRowsExist(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 1, "with unpaid", strPtr("2024-01-01"), nil)
	createProject(t, db, 2, "without unpaid", strPtr("2024-02-01"), nil)
	require.NoError(t, db.Create(&domain.UnpaidInvoiceRow{
		ProjectID:   1,
		InvoiceNo:   strPtr("U-1"),
		InvoiceDate: strPtr("2024-04-01"),
		Amount:      floatPtr(980.50),
	}).Error)

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Len(t, out[0].UnpaidInvoices, 1)
	assert.Equal(t, "2024-04-01", *out[0].UnpaidInvoices[0].InvoiceDate)
	assert.Nil(t, out[1].UnpaidInvoices)

	// Absent collections must be omitted from the JSON entirely; children
	// must always be present, even when empty.
	raw, err := json.Marshal(out[1])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "unpaid_invoices")
	assert.NotContains(t, string(raw), "\"invoices\"")
	assert.Contains(t, string(raw), "\"children\":[]")
}

func TestBuildChart_UrgencyNormalization(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	require.NoError(t, db.Create(&domain.ProjectRow{
		ProjectID:   1,
		ProjectName: "Urgent",
		StartDate:   strPtr("2024-01-01"),
		Urgency:     strPtr("  RED  "),
	}).Error)
	createProject(t, db, 2, "No urgency", strPtr("2024-02-01"), nil)

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "red", out[0].Urgency)
	assert.Equal(t, "", out[1].Urgency)
}

func TestBuildChart_DuplicateProjectIDLastWins(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 5, "first row", strPtr("2024-01-01"), nil)
	createProject(t, db, 6, "other project", strPtr("2024-02-01"), nil)
	createProject(t, db, 5, "replacement row", strPtr("2024-01-01"), nil)

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Last row's fields win, first row's output position is kept.
	assert.Equal(t, "replacement row", out[0].Name)
	assert.Equal(t, "other project", out[1].Name)
}

func TestBuildChart_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 1, "A", strPtr("2024-01-01"), strPtr("2024-06-01"))
	createProject(t, db, 2, "B", nil, nil)
	createSubproject(t, db, 1, "s1", strPtr("2"), strPtr("2024-01-05"), strPtr("2024-01-20"))
	createSubproject(t, db, 1, "s2", strPtr("1"), strPtr("2024-01-10"), strPtr("2024-01-25"))
	require.NoError(t, db.Create(&domain.InvoiceRow{ProjectID: 1, PaymentStatus: strPtr("paid")}).Error)
	require.NoError(t, db.Create(&domain.ReadyInvoiceRow{ProjectID: 2, ProjectStatus: strPtr("open")}).Error)

	first, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	second, err := svc.BuildChart(context.Background())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestBuildChart_DateTimeFormats(t *testing.T) {
	db := setupTestDB(t)
	svc := setupService(db)

	createProject(t, db, 1, "datetime", strPtr("2024-01-02 15:04:05"), strPtr("Fri, 01 Mar 2024 09:00:00 UTC"))

	out, err := svc.BuildChart(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Start)
	assert.Equal(t, "2024-01-02T15:04:05", *out[0].Start)
	require.NotNil(t, out[0].End)
	assert.Equal(t, "2024-03-01T09:00:00", *out[0].End)
}
