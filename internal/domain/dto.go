package domain

// DTOs for the Gantt chart response. Field names match what the chart
// frontend consumes; dates are canonical ISO strings (see internal/dates),
// nil when the source value is absent or unparseable.

// ProjectNode is a top-level bar on the chart with its attached children
// and financial annotations. Children is always present (empty when the
// project has no renderable subprojects); the invoice collections are
// omitted entirely when empty.
type ProjectNode struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Start          *string              `json:"start"`
	End            *string              `json:"end"`
	Urgency        string               `json:"urgency"`
	State          *string              `json:"state"`
	ProjectManager *string              `json:"project_manager"`
	ProjectDetails *string              `json:"project_details"`
	PTeam          *string              `json:"p_team"`
	AssignTo       *string              `json:"assign_to"`
	ReopenStatus   *string              `json:"reopen_status"`
	Children       []ChildNode          `json:"children"`
	Invoices       []InvoiceEntry       `json:"invoices,omitempty"`
	ReadyToInvoice []ReadyInvoiceEntry  `json:"ready_to_invoice,omitempty"`
	UnpaidInvoices []UnpaidInvoiceEntry `json:"unpaid_invoices,omitempty"`
}

// ChildNode is a subproject bar. Start and End are always set: a subproject
// without both dates cannot be rendered as a time span and is never emitted.
// ID is a surrogate key (parent id + append position) unique within the
// response; the raw status code stays available as a display field.
type ChildNode struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Start             string  `json:"start"`
	End               string  `json:"end"`
	Urgency           string  `json:"urgency"`
	Status            *string `json:"status"`
	SubprojectDetails *string `json:"subproject_details"`
	PTeam             *string `json:"p_team"`
	AssignTo          *string `json:"assign_to"`
	ReopenStatus      *string `json:"reopen_status"`
}

// InvoiceEntry is a formally issued invoice attached to a project
type InvoiceEntry struct {
	InvoiceNumber *string  `json:"invoice_number"`
	ServiceDate   *string  `json:"service_date"`
	DueDate       *string  `json:"due_date"`
	PaymentStatus string   `json:"payment_status"`
	Amount        *float64 `json:"amount"`
	Comment       *string  `json:"comment"`
}

// ReadyInvoiceEntry is a billable item not yet formally invoiced
type ReadyInvoiceEntry struct {
	InvoiceNumber *string  `json:"invoice_number"`
	ServiceDate   *string  `json:"service_date"`
	DueDate       *string  `json:"due_date"`
	ProjectStatus string   `json:"project_status"`
	Price         *float64 `json:"price"`
	Comments      *string  `json:"comments"`
}

// UnpaidInvoiceEntry is an issued invoice still awaiting payment
type UnpaidInvoiceEntry struct {
	InvoiceNo    *string  `json:"invoice_no"`
	Comments     *string  `json:"comments"`
	InvoiceDate  *string  `json:"invoice_date"`
	BookedDate   *string  `json:"booked_date"`
	ReceivedDate *string  `json:"received_date"`
	Amount       *float64 `json:"amount"`
}
