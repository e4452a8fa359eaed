package domain

// Row models for the five legacy read tables. Column names and types mirror
// the source schema exactly; date columns are declared as nullable text
// because legacy rows carry zero-date sentinels and free-form date strings
// alongside real dates. Normalization happens in the service layer, never
// here. All access is read-only.

// ProjectRow is one row of the projects table
type ProjectRow struct {
	ProjectID      int64   `gorm:"column:project_id"`
	ProjectName    string  `gorm:"column:project_name"`
	Urgency        *string `gorm:"column:urgency"`
	StartDate      *string `gorm:"column:start_date"`
	EndDate        *string `gorm:"column:end_date"`
	State          *string `gorm:"column:state"`
	ProjectManager *string `gorm:"column:project_manager"`
	ProjectDetails *string `gorm:"column:project_details"`
	PTeam          *string `gorm:"column:p_team"`
	AssignTo       *string `gorm:"column:assign_to"`
	ReopenStatus   *string `gorm:"column:reopen_status"`
}

func (ProjectRow) TableName() string { return "projects" }

// SubprojectRow is one row of the subprojects table
type SubprojectRow struct {
	ProjectID         int64   `gorm:"column:project_id"`
	SubprojectName    string  `gorm:"column:subproject_name"`
	Urgency           *string `gorm:"column:urgency"`
	StartDate         *string `gorm:"column:start_date"`
	SubEndDate        *string `gorm:"column:sub_end_date"`
	SubprojectStatus  *string `gorm:"column:subproject_status"`
	SubprojectDetails *string `gorm:"column:subproject_details"`
	AssignTo          *string `gorm:"column:assign_to"`
	PTeam             *string `gorm:"column:p_team"`
	ReopenStatus      *string `gorm:"column:reopen_status"`
}

func (SubprojectRow) TableName() string { return "subprojects" }

// InvoiceRow is one row of the csa_finance_invoiced table
type InvoiceRow struct {
	ProjectID     int64    `gorm:"column:project_id"`
	InvoiceNumber *string  `gorm:"column:invoice_number"`
	ServiceDate   *string  `gorm:"column:service_date"`
	DueDate       *string  `gorm:"column:due_date"`
	PaymentStatus *string  `gorm:"column:payment_status"`
	Amount        *float64 `gorm:"column:amount"`
	Comment       *string  `gorm:"column:comment"`
}

func (InvoiceRow) TableName() string { return "csa_finance_invoiced" }

// ReadyInvoiceRow is one row of the csa_finance_readytobeinvoiced table
type ReadyInvoiceRow struct {
	ProjectID     int64    `gorm:"column:project_id"`
	InvoiceNumber *string  `gorm:"column:invoice_number"`
	ServiceDate   *string  `gorm:"column:service_date"`
	DueDate       *string  `gorm:"column:due_date"`
	ProjectStatus *string  `gorm:"column:project_status"`
	Price         *float64 `gorm:"column:price"`
	Comments      *string  `gorm:"column:comments"`
}

func (ReadyInvoiceRow) TableName() string { return "csa_finance_readytobeinvoiced" }

// UnpaidInvoiceRow is one row of the unpaidinvoices table
type UnpaidInvoiceRow struct {
	ProjectID    int64    `gorm:"column:project_id"`
	InvoiceNo    *string  `gorm:"column:invoice_no"`
	Comments     *string  `gorm:"column:comments"`
	InvoiceDate  *string  `gorm:"column:invoice_date"`
	BookedDate   *string  `gorm:"column:booked_date"`
	ReceivedDate *string  `gorm:"column:received_date"`
	Amount       *float64 `gorm:"column:amount"`
}

func (UnpaidInvoiceRow) TableName() string { return "unpaidinvoices" }
