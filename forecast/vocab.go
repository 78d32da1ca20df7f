package forecast

import "bitbucket.org/mmdatafocus/forecast_backend/models"

// Fixed vocabularies for the dimensional fields. These are intentionally
// small, recognizable lists so generated plans read like real ones.
var (
	departments = []string{"Sales", "Operations", "Finance", "HR", "IT"}
	costCenters = []string{"CC-100", "CC-200", "CC-300", "CC-400"}
	glInflow    = []string{"4000", "4010", "4020"}
	glOutflow   = []string{"6000", "6010", "7000", "7100"}

	customers = []string{
		"Acme Retailers", "BlueSky Corp", "Northwind Traders", "Globex LLC", "Innotech",
		"Wayne Enterprises", "Stark Industries", "Wonka Imports", "Umbrella Co", "Oscorp",
	}
	vendors = []string{
		"Okta Inc", "AWS", "Google Cloud", "Microsoft 365", "Salesforce", "Zoom Video",
		"PG&E", "Comcast Business", "WeWork", "Square Payroll",
	}
)

// Fixed named counterparties for the obligatory archetypes.
const (
	counterpartyStaff = "Company Staff"
	counterpartyTax   = "IRS"
	counterpartyBank  = "Bank of Gotham"
	counterpartyRent  = "WeWork"
)

var categoryByType = map[models.CashflowType]string{
	models.CashflowTypeARInvoice:   "Revenue > Customer Invoice",
	models.CashflowTypePayroll:     "Payroll > Salaries",
	models.CashflowTypeAPBill:      "Ops > Vendor Bill",
	models.CashflowTypeTax:         "Finance > Taxes",
	models.CashflowTypeLoanPayment: "Finance > Loan Payment",
	models.CashflowTypeCreditDraw:  "Finance > Credit Line",
	models.CashflowTypeOther:       "Misc > One-off",
}

const (
	categoryRent = "Ops > Rent"
	categorySaaS = "Ops > SaaS"
)

func categoryFor(t models.CashflowType) string {
	if c, ok := categoryByType[t]; ok {
		return c
	}
	return "Misc"
}
